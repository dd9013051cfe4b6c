package advertising

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	clientmocks "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository/mocks"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"go.uber.org/mock/gomock"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func TestUpdateCampaign(t *testing.T) {
	t.Run("converte orçamento para centavos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		client := clientmocks.NewMockClient(ctrl)
		service := NewMutationService(integrationRepo, client)

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(activeIntegration(), nil)

		client.EXPECT().
			UpdateEntity(gomock.Any(), "tok_abc", "camp123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params url.Values) error {
				assert.Equal(t, "2550", params.Get("daily_budget"))
				assert.Equal(t, "PAUSED", params.Get("status"))
				return nil
			})

		err := service.UpdateCampaign(context.Background(), &domain.UpdateCampaignRequest{
			CampaignID:  "camp123",
			Status:      stringPtr("PAUSED"),
			DailyBudget: float64Ptr(25.50),
		})

		assert.NoError(t, err)
	})

	t.Run("arredonda centavos fracionários", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		client := clientmocks.NewMockClient(ctrl)
		service := NewMutationService(integrationRepo, client)

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(activeIntegration(), nil)

		client.EXPECT().
			UpdateEntity(gomock.Any(), "tok_abc", "camp123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params url.Values) error {
				assert.Equal(t, "1000", params.Get("lifetime_budget"))
				return nil
			})

		err := service.UpdateCampaign(context.Background(), &domain.UpdateCampaignRequest{
			CampaignID:     "camp123",
			LifetimeBudget: float64Ptr(9.999),
		})

		assert.NoError(t, err)
	})

	t.Run("sem campos devolve erro antes de consultar a integração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		client := clientmocks.NewMockClient(ctrl)
		service := NewMutationService(integrationRepo, client)

		err := service.UpdateCampaign(context.Background(), &domain.UpdateCampaignRequest{
			CampaignID: "camp123",
		})

		assert.EqualError(t, err, "nenhum campo para atualizar")
	})

	t.Run("sem campaignId devolve erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMutationService(mocks.NewMockIntegrationRepository(ctrl), clientmocks.NewMockClient(ctrl))

		err := service.UpdateCampaign(context.Background(), &domain.UpdateCampaignRequest{
			Status: stringPtr("ACTIVE"),
		})

		assert.EqualError(t, err, "campaignId é obrigatório")
	})

	t.Run("integração ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		service := NewMutationService(integrationRepo, clientmocks.NewMockClient(ctrl))

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(nil, nil)

		err := service.UpdateCampaign(context.Background(), &domain.UpdateCampaignRequest{
			CampaignID: "camp123",
			Status:     stringPtr("ACTIVE"),
		})

		assert.ErrorIs(t, err, ErrIntegrationNotConfigured)
	})
}

func TestUpdateAd_GraphErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)
	service := NewMutationService(integrationRepo, client)

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	graphErr := &metadomain.APIError{
		Message: "Budget below minimum",
		Type:    "FacebookApiException",
		Code:    100,
	}

	client.EXPECT().
		UpdateEntity(gomock.Any(), "tok_abc", "ad777", gomock.Any()).
		Return(graphErr)

	err := service.UpdateAd(context.Background(), &domain.UpdateAdRequest{
		AdID:   "ad777",
		Status: stringPtr("ACTIVE"),
	})

	// A mensagem remota sobe intacta para o painel
	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Budget below minimum", apiErr.Message)
}
