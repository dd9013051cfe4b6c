package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/adlibrary"
)

// AdAnalysisSyncService agenda a varredura que gera análise de IA para
// anúncios salvos sem análise. Roda em lotes pequenos para não estourar a
// cota da API de IA.
type AdAnalysisSyncService struct {
	scheduler  *gocron.Scheduler
	cfg        *config.Config
	library    adlibrary.Searcher
	pending    PendingLister
	syncMutex  sync.Mutex
	running    bool
	lastRunAt  time.Time
	lastDoneAt time.Time
}

// PendingLister lista os anúncios salvos ainda sem análise de IA.
type PendingLister interface {
	ListWithoutAnalysis(limit int) ([]*domain.SavedAd, error)
}

func NewAdAnalysisSyncService(library adlibrary.Searcher, pending PendingLister, cfg *config.Config) *AdAnalysisSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.AdAnalysisSync.CronSchedule,
		"batch_size":    cfg.AdAnalysisSync.BatchSize,
		"sync_enabled":  cfg.AdAnalysisSync.Enabled,
	}).Info("Configuração do agendador de análise de anúncios carregada")

	return &AdAnalysisSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		library:   library,
		pending:   pending,
	}
}

// Start inicia o agendador
func (s *AdAnalysisSyncService) Start(ctx context.Context) error {
	if !s.cfg.AdAnalysisSync.Enabled {
		logrus.Info("Varredura de análise de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.AdAnalysisSync.CronSchedule).
		Info("Iniciando agendador de análise de anúncios salvos")

	_, err := s.scheduler.Cron(s.cfg.AdAnalysisSync.CronSchedule).Do(func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de análise de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// runSweep processa um lote de anúncios salvos sem análise
func (s *AdAnalysisSyncService) runSweep(ctx context.Context) {
	s.syncMutex.Lock()
	if s.running {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de análise de anúncios já em andamento, ignorando")
		return
	}
	s.running = true
	s.syncMutex.Unlock()

	s.lastRunAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.running = false
		s.syncMutex.Unlock()
	}()

	pendingAds, err := s.pending.ListWithoutAnalysis(s.cfg.AdAnalysisSync.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar anúncios salvos sem análise")
		return
	}

	if len(pendingAds) == 0 {
		logrus.Info("Nenhum anúncio salvo pendente de análise")
		return
	}

	analyzed := 0
	for _, ad := range pendingAds {
		if ad.AdText == nil || *ad.AdText == "" {
			continue
		}

		_, err := s.library.RunAI(ctx, &domain.AIRequest{
			Action: domain.AIActionAnalyze,
			AdText: *ad.AdText,
			AdID:   ad.AdID,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{"ad_id": ad.AdID, "error": err}).
				Warn("Erro ao gerar análise de IA para anúncio salvo")
			continue
		}
		analyzed++
	}

	logrus.WithFields(logrus.Fields{
		"pending":  len(pendingAds),
		"analyzed": analyzed,
	}).Info("Varredura de análise de anúncios concluída")

	s.lastDoneAt = time.Now()
}
