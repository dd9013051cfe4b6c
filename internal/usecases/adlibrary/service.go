package adlibrary

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/openai"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrAINotConfigured = errors.New("integração de IA não configurada")
	ErrMissingAdText   = errors.New("texto do anúncio é obrigatório")
)

type Searcher interface {
	Search(ctx context.Context, filters *domain.ArchiveSearchFilters) (*domain.ArchiveSearchResponse, error)
	ListSaved() ([]*domain.SavedAd, error)
	SaveAd(req *domain.SaveAdRequest) (*domain.SaveAdResponse, error)
	DeleteSaved(id string) error
	RunAI(ctx context.Context, req *domain.AIRequest) (*domain.AIResponse, error)
}

type Service struct {
	integrationRepo repository.IntegrationRepository
	savedAdRepo     repository.SavedAdRepository
	client          metaclient.Client
	ai              openai.Client
}

func NewService(
	integrationRepo repository.IntegrationRepository,
	savedAdRepo repository.SavedAdRepository,
	client metaclient.Client,
	ai openai.Client,
) Searcher {
	return &Service{
		integrationRepo: integrationRepo,
		savedAdRepo:     savedAdRepo,
		client:          client,
		ai:              ai,
	}
}

// Search consulta a Ad Library com o token da integração do Facebook e
// transforma os anúncios crus para a forma do painel. Erros da API remota
// saem como resposta 200 com o campo error preenchido — o painel decide
// como exibir.
func (s *Service) Search(ctx context.Context, filters *domain.ArchiveSearchFilters) (*domain.ArchiveSearchResponse, error) {
	resp := &domain.ArchiveSearchResponse{}

	integration, err := s.integrationRepo.GetActiveByPlatform(domain.PlatformFacebook)
	if err != nil {
		return nil, err
	}
	if !integration.HasCredential() {
		resp.Error = "Meta Ads não configurado. Vá em Configurações para conectar."
		return resp, nil
	}
	resp.Connected = true

	page, err := s.client.SearchAdsArchive(ctx, *integration.APIKey, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{"search_terms": filters.SearchTerms, "error": err}).
			Error("Erro ao buscar na Ad Library")
		resp.Error = err.Error()
		return resp, nil
	}

	// Contagem de anúncios por página dentro da própria página de resultados
	pageCounts := make(map[string]int)
	for i := range page.Ads {
		if page.Ads[i].PageID != "" {
			pageCounts[page.Ads[i].PageID]++
		}
	}

	resp.Ads = make([]*domain.ArchiveAd, 0, len(page.Ads))
	for i := range page.Ads {
		resp.Ads = append(resp.Ads, transformArchiveAd(&page.Ads[i], pageCounts))
	}

	resp.Total = len(resp.Ads)
	resp.After = page.After

	return resp, nil
}

func transformArchiveAd(raw *metadomain.RawArchiveAd, pageCounts map[string]int) *domain.ArchiveAd {
	ad := &domain.ArchiveAd{
		ID:              raw.ID,
		PageName:        raw.PageName,
		AdText:          firstOf(raw.AdCreativeBodies),
		LinkTitle:       firstOf(raw.AdCreativeLinkTitles),
		LinkCaption:     firstOf(raw.AdCreativeLinkCaptions),
		LinkDescription: firstOf(raw.AdCreativeLinkDescs),
		Platforms:       raw.PublisherPlatforms,
		Languages:       raw.Languages,
		Impressions:     raw.Impressions,
		Spend:           raw.Spend,
		DaysActive:      daysActive(raw.AdDeliveryStartTime, raw.AdDeliveryStopTime),
	}

	if raw.PageID != "" {
		ad.PageID = &raw.PageID
		ad.PageAdCount = pageCounts[raw.PageID]
	}
	if raw.AdDeliveryStartTime != "" {
		ad.StartDate = &raw.AdDeliveryStartTime
	}
	if raw.AdDeliveryStopTime != "" {
		ad.StopDate = &raw.AdDeliveryStopTime
	}
	if raw.AdSnapshotURL != "" {
		ad.SnapshotURL = &raw.AdSnapshotURL
	}

	return ad
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// daysActive calcula há quantos dias o anúncio roda. Sem data de fim, o
// anúncio é considerado ativo até hoje.
func daysActive(start, stop string) int {
	if start == "" {
		return 0
	}

	startDate, err := time.Parse("2006-01-02", start[:min(len(start), 10)])
	if err != nil {
		return 0
	}

	end := time.Now()
	if stop != "" {
		if stopDate, err := time.Parse("2006-01-02", stop[:min(len(stop), 10)]); err == nil {
			end = stopDate
		}
	}

	days := int(end.Sub(startDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *Service) ListSaved() ([]*domain.SavedAd, error) {
	return s.savedAdRepo.List()
}

// SaveAd é idempotente por adId: salvar um anúncio já salvo devolve o
// registro existente com alreadySaved, nunca um erro.
func (s *Service) SaveAd(req *domain.SaveAdRequest) (*domain.SaveAdResponse, error) {
	if req.AdID == "" {
		return nil, errors.New("adId é obrigatório")
	}

	existing, err := s.savedAdRepo.GetByAdID(req.AdID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return &domain.SaveAdResponse{Success: true, AlreadySaved: true, Ad: existing}, nil
	}

	saved, err := s.savedAdRepo.Create(req)
	if err != nil {
		return nil, err
	}

	return &domain.SaveAdResponse{Success: true, Ad: saved}, nil
}

// DeleteSaved remove um anúncio salvo pelo adId da Ad Library — o
// identificador que o painel conhece. Quando o valor não corresponde a um
// adId salvo, cai para o id local da linha.
func (s *Service) DeleteSaved(id string) error {
	saved, err := s.savedAdRepo.GetByAdID(id)
	if err != nil {
		return err
	}
	if saved != nil {
		return s.savedAdRepo.Delete(saved.ID)
	}

	return s.savedAdRepo.Delete(id)
}

const (
	analyzePrompt = "Você é um especialista em marketing digital e análise de anúncios. " +
		"Analise o anúncio fornecido e aponte: gancho, promessa, prova, oferta e chamada para ação. " +
		"Avalie os pontos fortes e fracos do texto. Responda em português, de forma estruturada e objetiva."

	generateCopyPrompt = "Você é um copywriter especialista em anúncios de resposta direta. " +
		"Com base no anúncio de referência fornecido, escreva 3 variações novas de copy, " +
		"mantendo o mesmo posicionamento mas com ganchos diferentes. Responda em português."
)

// RunAI roda uma ação de IA sobre o texto de um anúncio. Quando o pedido
// referencia um anúncio salvo, o resultado da análise é anexado ao registro
// em melhor esforço: falha de escrita não invalida a resposta.
func (s *Service) RunAI(ctx context.Context, req *domain.AIRequest) (*domain.AIResponse, error) {
	if !s.ai.Configured() {
		return nil, ErrAINotConfigured
	}

	if strings.TrimSpace(req.AdText) == "" {
		return nil, ErrMissingAdText
	}

	var systemPrompt string
	switch req.Action {
	case domain.AIActionAnalyze:
		systemPrompt = analyzePrompt
	case domain.AIActionGenerateCopy:
		systemPrompt = generateCopyPrompt
	default:
		return nil, errors.Errorf("ação de IA desconhecida: %s", req.Action)
	}

	result, err := s.ai.ChatCompletion(ctx, systemPrompt, req.AdText)
	if err != nil {
		return nil, err
	}

	if req.Action == domain.AIActionAnalyze && req.AdID != "" {
		saved, err := s.savedAdRepo.GetByAdID(req.AdID)
		if err == nil && saved != nil {
			if err := s.savedAdRepo.UpdateAnalysis(saved.ID, result); err != nil {
				logrus.WithFields(logrus.Fields{"ad_id": req.AdID, "error": err}).
					Warn("Erro ao anexar análise ao anúncio salvo")
			}
		}
	}

	return &domain.AIResponse{Result: result}, nil
}
