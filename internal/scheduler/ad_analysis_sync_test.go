package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository/mocks"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	librarymocks "github.com/QUATTROMKT/info-sistema/internal/usecases/adlibrary/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newSweepService(library *librarymocks.MockSearcher, pending *mocks.MockSavedAdRepository) *AdAnalysisSyncService {
	return &AdAnalysisSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg: &config.Config{
			AdAnalysisSync: config.AdAnalysisSync{
				Enabled:   true,
				BatchSize: 5,
			},
		},
		library: library,
		pending: pending,
	}
}

func TestAdAnalysisSyncService_runSweep(t *testing.T) {
	t.Run("analisa os pendentes com texto e pula os sem texto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		library := librarymocks.NewMockSearcher(ctrl)
		pending := mocks.NewMockSavedAdRepository(ctrl)
		service := newSweepService(library, pending)

		pending.EXPECT().
			ListWithoutAnalysis(5).
			Return([]*domain.SavedAd{
				{ID: "s1", AdID: "ad1", AdText: stringPtr("texto do primeiro")},
				{ID: "s2", AdID: "ad2"},
				{ID: "s3", AdID: "ad3", AdText: stringPtr("texto do terceiro")},
			}, nil)

		library.EXPECT().
			RunAI(gomock.Any(), &domain.AIRequest{
				Action: domain.AIActionAnalyze,
				AdText: "texto do primeiro",
				AdID:   "ad1",
			}).
			Return(&domain.AIResponse{Result: "análise 1"}, nil)

		library.EXPECT().
			RunAI(gomock.Any(), &domain.AIRequest{
				Action: domain.AIActionAnalyze,
				AdText: "texto do terceiro",
				AdID:   "ad3",
			}).
			Return(&domain.AIResponse{Result: "análise 3"}, nil)

		service.runSweep(context.Background())

		assert.False(t, service.lastDoneAt.IsZero())
	})

	t.Run("falha de IA em um anúncio não interrompe o lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		library := librarymocks.NewMockSearcher(ctrl)
		pending := mocks.NewMockSavedAdRepository(ctrl)
		service := newSweepService(library, pending)

		pending.EXPECT().
			ListWithoutAnalysis(5).
			Return([]*domain.SavedAd{
				{ID: "s1", AdID: "ad1", AdText: stringPtr("primeiro")},
				{ID: "s2", AdID: "ad2", AdText: stringPtr("segundo")},
			}, nil)

		library.EXPECT().
			RunAI(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		library.EXPECT().
			RunAI(gomock.Any(), gomock.Any()).
			Return(&domain.AIResponse{Result: "ok"}, nil)

		service.runSweep(context.Background())
	})

	t.Run("lote vazio não chama a IA", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		library := librarymocks.NewMockSearcher(ctrl)
		pending := mocks.NewMockSavedAdRepository(ctrl)
		service := newSweepService(library, pending)

		pending.EXPECT().
			ListWithoutAnalysis(5).
			Return(nil, nil)

		service.runSweep(context.Background())

		assert.True(t, service.lastDoneAt.IsZero())
	})
}
