package adlibrary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	clientmocks "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient/mocks"
	aimocks "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/openai/mocks"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository/mocks"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockIntegrationRepository, *mocks.MockSavedAdRepository, *clientmocks.MockClient, *aimocks.MockClient) {
	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	savedAdRepo := mocks.NewMockSavedAdRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)
	ai := aimocks.NewMockClient(ctrl)

	service := &Service{
		integrationRepo: integrationRepo,
		savedAdRepo:     savedAdRepo,
		client:          client,
		ai:              ai,
	}

	return service, integrationRepo, savedAdRepo, client, ai
}

func facebookIntegration() *domain.Integration {
	return &domain.Integration{
		ID:       "int001",
		Platform: domain.PlatformFacebook,
		APIKey:   stringPtr("tok_lib"),
		IsActive: true,
	}
}

func TestSearch(t *testing.T) {
	t.Run("integração ausente devolve desconectado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, integrationRepo, _, _, _ := newTestService(ctrl)

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(nil, nil)

		resp, err := service.Search(context.Background(), &domain.ArchiveSearchFilters{SearchTerms: "tenis"})

		require.NoError(t, err)
		assert.False(t, resp.Connected)
		assert.Empty(t, resp.Ads)
		assert.Equal(t, "Meta Ads não configurado. Vá em Configurações para conectar.", resp.Error)
	})

	t.Run("erro remoto vira resposta com campo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, integrationRepo, _, client, _ := newTestService(ctrl)

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(facebookIntegration(), nil)

		client.EXPECT().
			SearchAdsArchive(gomock.Any(), "tok_lib", gomock.Any()).
			Return(nil, &metadomain.APIError{Message: "Invalid parameter", Code: 100})

		resp, err := service.Search(context.Background(), &domain.ArchiveSearchFilters{SearchTerms: "tenis"})

		require.NoError(t, err)
		assert.True(t, resp.Connected)
		assert.Contains(t, resp.Error, "Invalid parameter")
	})

	t.Run("transforma anúncios e conta por página", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, integrationRepo, _, client, _ := newTestService(ctrl)

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(facebookIntegration(), nil)

		client.EXPECT().
			SearchAdsArchive(gomock.Any(), "tok_lib", gomock.Any()).
			Return(&metadomain.ArchivePage{
				Ads: []metadomain.RawArchiveAd{
					{
						ID:                  "ad1",
						PageID:              "page9",
						PageName:            "Loja X",
						AdCreativeBodies:    []string{"primeiro corpo", "segundo corpo"},
						AdDeliveryStartTime: "2026-08-01T00:00:00+0000",
						AdDeliveryStopTime:  "2026-08-11T00:00:00+0000",
						AdSnapshotURL:       "https://facebook.com/ads/archive/render_ad?id=ad1",
						PublisherPlatforms:  []string{"facebook", "instagram"},
					},
					{ID: "ad2", PageID: "page9", PageName: "Loja X"},
					{ID: "ad3", PageID: "page7", PageName: "Loja Y"},
				},
				After: "cursor_xyz",
			}, nil)

		resp, err := service.Search(context.Background(), &domain.ArchiveSearchFilters{SearchTerms: "tenis"})

		require.NoError(t, err)
		assert.True(t, resp.Connected)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, "cursor_xyz", resp.After)

		first := resp.Ads[0]
		assert.Equal(t, "primeiro corpo", first.AdText)
		assert.Equal(t, 10, first.DaysActive)
		assert.Equal(t, 2, first.PageAdCount)
		require.NotNil(t, first.SnapshotURL)
		require.NotNil(t, first.PageID)
		assert.Equal(t, "page9", *first.PageID)

		assert.Equal(t, 1, resp.Ads[2].PageAdCount)
	})
}

func TestSaveAd(t *testing.T) {
	t.Run("anúncio novo é criado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, savedAdRepo, _, _ := newTestService(ctrl)

		req := &domain.SaveAdRequest{AdID: "ad1", PageName: "Loja X"}
		created := &domain.SavedAd{ID: "uuid1", AdID: "ad1", PageName: "Loja X"}

		savedAdRepo.EXPECT().GetByAdID("ad1").Return(nil, nil)
		savedAdRepo.EXPECT().Create(req).Return(created, nil)

		resp, err := service.SaveAd(req)

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.False(t, resp.AlreadySaved)
		assert.Equal(t, created, resp.Ad)
	})

	t.Run("anúncio já salvo devolve o existente sem criar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, savedAdRepo, _, _ := newTestService(ctrl)

		existing := &domain.SavedAd{ID: "uuid1", AdID: "ad1", PageName: "Loja X"}
		savedAdRepo.EXPECT().GetByAdID("ad1").Return(existing, nil)

		resp, err := service.SaveAd(&domain.SaveAdRequest{AdID: "ad1", PageName: "Loja X"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.True(t, resp.AlreadySaved)
		assert.Equal(t, existing, resp.Ad)
	})

	t.Run("sem adId devolve erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, _ := newTestService(ctrl)

		_, err := service.SaveAd(&domain.SaveAdRequest{PageName: "Loja X"})

		assert.EqualError(t, err, "adId é obrigatório")
	})
}

func TestDeleteSaved(t *testing.T) {
	t.Run("resolve pelo adId da Ad Library", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, savedAdRepo, _, _ := newTestService(ctrl)

		savedAdRepo.EXPECT().GetByAdID("ad1").Return(&domain.SavedAd{ID: "uuid1", AdID: "ad1"}, nil)
		savedAdRepo.EXPECT().Delete("uuid1").Return(nil)

		assert.NoError(t, service.DeleteSaved("ad1"))
	})

	t.Run("sem adId correspondente cai para o id local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, savedAdRepo, _, _ := newTestService(ctrl)

		savedAdRepo.EXPECT().GetByAdID("uuid9").Return(nil, nil)
		savedAdRepo.EXPECT().Delete("uuid9").Return(nil)

		assert.NoError(t, service.DeleteSaved("uuid9"))
	})
}

func TestRunAI(t *testing.T) {
	t.Run("ia não configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, ai := newTestService(ctrl)

		ai.EXPECT().Configured().Return(false)

		_, err := service.RunAI(context.Background(), &domain.AIRequest{
			Action: domain.AIActionAnalyze,
			AdText: "texto",
		})

		assert.ErrorIs(t, err, ErrAINotConfigured)
	})

	t.Run("texto vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, ai := newTestService(ctrl)

		ai.EXPECT().Configured().Return(true)

		_, err := service.RunAI(context.Background(), &domain.AIRequest{
			Action: domain.AIActionAnalyze,
			AdText: "   ",
		})

		assert.ErrorIs(t, err, ErrMissingAdText)
	})

	t.Run("análise anexa o resultado ao anúncio salvo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, savedAdRepo, _, ai := newTestService(ctrl)

		ai.EXPECT().Configured().Return(true)
		ai.EXPECT().
			ChatCompletion(gomock.Any(), gomock.Any(), "texto do anúncio").
			Return("análise detalhada", nil)

		saved := &domain.SavedAd{ID: "uuid1", AdID: "ad1"}
		savedAdRepo.EXPECT().GetByAdID("ad1").Return(saved, nil)
		savedAdRepo.EXPECT().UpdateAnalysis("uuid1", "análise detalhada").Return(nil)

		resp, err := service.RunAI(context.Background(), &domain.AIRequest{
			Action: domain.AIActionAnalyze,
			AdText: "texto do anúncio",
			AdID:   "ad1",
		})

		require.NoError(t, err)
		assert.Equal(t, "análise detalhada", resp.Result)
	})

	t.Run("geração de copy não toca o repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, ai := newTestService(ctrl)

		ai.EXPECT().Configured().Return(true)
		ai.EXPECT().
			ChatCompletion(gomock.Any(), gomock.Any(), "texto base").
			Return("três variações", nil)

		resp, err := service.RunAI(context.Background(), &domain.AIRequest{
			Action: domain.AIActionGenerateCopy,
			AdText: "texto base",
			AdID:   "ad1",
		})

		require.NoError(t, err)
		assert.Equal(t, "três variações", resp.Result)
	})

	t.Run("ação desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, ai := newTestService(ctrl)

		ai.EXPECT().Configured().Return(true)

		_, err := service.RunAI(context.Background(), &domain.AIRequest{
			Action: domain.AIAction("summarize"),
			AdText: "texto",
		})

		assert.Error(t, err)
	})
}

func TestDaysActive(t *testing.T) {
	assert.Equal(t, 10, daysActive("2026-08-01", "2026-08-11"))
	assert.Equal(t, 0, daysActive("", "2026-08-11"))
	assert.Equal(t, 0, daysActive("inválida", ""))
	// Fim antes do início não produz valor negativo
	assert.Equal(t, 0, daysActive("2026-08-11", "2026-08-01"))
}
