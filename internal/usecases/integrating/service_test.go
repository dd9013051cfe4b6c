package integrating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository/mocks"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestSave(t *testing.T) {
	t.Run("normaliza a conta do facebook e mascara a chave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		service := NewService(integrationRepo, mocks.NewMockAdAccountRepository(ctrl))

		integrationRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(req *domain.SaveIntegrationRequest) (*domain.Integration, error) {
				assert.Equal(t, "act_123456", req.AccountID)
				return &domain.Integration{
					ID:       "int001",
					Platform: req.Platform,
					APIKey:   stringPtr("EAABsbCS1234567890"),
				}, nil
			})

		integration, err := service.Save(&domain.SaveIntegrationRequest{
			Platform:  domain.PlatformFacebook,
			APIKey:    "EAABsbCS1234567890",
			AccountID: "123456",
		})

		require.NoError(t, err)
		require.NotNil(t, integration.APIKey)
		assert.Equal(t, "EAAB...7890", *integration.APIKey)
	})

	t.Run("plataforma inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockIntegrationRepository(ctrl), mocks.NewMockAdAccountRepository(ctrl))

		_, err := service.Save(&domain.SaveIntegrationRequest{
			Platform: domain.Platform("TIKTOK"),
			APIKey:   "abc",
		})

		assert.ErrorIs(t, err, ErrInvalidPlatform)
	})

	t.Run("chave ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockIntegrationRepository(ctrl), mocks.NewMockAdAccountRepository(ctrl))

		_, err := service.Save(&domain.SaveIntegrationRequest{Platform: domain.PlatformOpenAI})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestMaskAPIKey(t *testing.T) {
	t.Run("chave longa preserva as pontas", func(t *testing.T) {
		integration := &domain.Integration{APIKey: stringPtr("EAABsbCS1234567890")}

		maskAPIKey(integration)

		assert.Equal(t, "EAAB...7890", *integration.APIKey)
	})

	t.Run("chave curta vira asteriscos", func(t *testing.T) {
		integration := &domain.Integration{APIKey: stringPtr("curta")}

		maskAPIKey(integration)

		assert.Equal(t, "***", *integration.APIKey)
	})

	t.Run("sem chave não faz nada", func(t *testing.T) {
		integration := &domain.Integration{}

		maskAPIKey(integration)

		assert.Nil(t, integration.APIKey)
	})
}

func TestAddAdAccount(t *testing.T) {
	t.Run("exige integração do facebook configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		service := NewService(integrationRepo, mocks.NewMockAdAccountRepository(ctrl))

		integrationRepo.EXPECT().
			GetByPlatform(domain.PlatformFacebook).
			Return(nil, nil)

		_, err := service.AddAdAccount(&domain.AddAdAccountRequest{Name: "Conta", AccountID: "123"})

		assert.ErrorIs(t, err, ErrFacebookNotConfigured)
	})

	t.Run("cria vinculada à integração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
		service := NewService(integrationRepo, adAccountRepo)

		integrationRepo.EXPECT().
			GetByPlatform(domain.PlatformFacebook).
			Return(&domain.Integration{ID: "int001"}, nil)

		req := &domain.AddAdAccountRequest{Name: "Conta", AccountID: "123"}
		adAccountRepo.EXPECT().
			Create("int001", req).
			Return(&domain.AdAccount{ID: "a1", AccountID: "act_123"}, nil)

		account, err := service.AddAdAccount(req)

		require.NoError(t, err)
		assert.Equal(t, "a1", account.ID)
	})
}

func TestSelectableAccounts(t *testing.T) {
	t.Run("sem contas cadastradas cai na conta legada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
		service := NewService(integrationRepo, adAccountRepo)

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(&domain.Integration{ID: "int001", AccountID: stringPtr("act_999")}, nil)

		adAccountRepo.EXPECT().
			ListActiveByIntegration("int001").
			Return(nil, nil)

		accounts, err := service.SelectableAccounts()

		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "legacy", accounts[0].ID)
		assert.Equal(t, "act_999", accounts[0].AccountID)
	})

	t.Run("sem integração devolve lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
		service := NewService(integrationRepo, mocks.NewMockAdAccountRepository(ctrl))

		integrationRepo.EXPECT().
			GetActiveByPlatform(domain.PlatformFacebook).
			Return(nil, nil)

		accounts, err := service.SelectableAccounts()

		require.NoError(t, err)
		assert.Empty(t, accounts)
	})
}
