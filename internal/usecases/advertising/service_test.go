package advertising

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	clientmocks "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository/mocks"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{MaxConcurrentInsights: 2},
	}
}

func activeIntegration() *domain.Integration {
	return &domain.Integration{
		ID:       "int001",
		Platform: domain.PlatformFacebook,
		APIKey:   stringPtr("tok_abc"),
		IsActive: true,
	}
}

func purchaseInsight(spend, revenue string, purchases string) *metadomain.RawInsight {
	return &metadomain.RawInsight{
		Spend: spend,
		Actions: []metadomain.Action{
			{ActionType: "purchase", Value: purchases},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: revenue},
		},
	}
}

func TestListCampaigns_MultiAccountMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	adAccountRepo.EXPECT().
		ListActiveByIntegration("int001").
		Return([]*domain.AdAccount{
			{ID: "a1", AccountID: "act_111", IntegrationID: "int001", IsActive: true},
			{ID: "a2", AccountID: "act_222", IntegrationID: "int001", IsActive: true},
		}, nil)

	client.EXPECT().
		ListCampaigns(gomock.Any(), "tok_abc", "act_111").
		Return([]metadomain.RawCampaign{
			{ID: "c1", Name: "Campanha A", Status: "ACTIVE", DailyBudget: "2550"},
		}, nil)

	client.EXPECT().
		ListCampaigns(gomock.Any(), "tok_abc", "act_222").
		Return([]metadomain.RawCampaign{
			{ID: "c2", Name: "Campanha B", Status: "PAUSED"},
		}, nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "c1", domain.DatePresetLast30d).
		Return(purchaseInsight("100.00", "300.00", "3"), nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "c2", domain.DatePresetLast30d).
		Return(purchaseInsight("50.00", "0", "0"), nil)

	resp, err := service.ListCampaigns(context.Background(), &domain.ListOptions{
		DatePreset: domain.DatePresetLast30d,
	})

	require.NoError(t, err)
	assert.True(t, resp.Connected)
	assert.Empty(t, resp.Error)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Campaigns, 2)

	// Orçamento em centavos convertido para unidades monetárias
	require.NotNil(t, resp.Campaigns[0].DailyBudget)
	assert.Equal(t, 25.50, *resp.Campaigns[0].DailyBudget)

	// Totais somados entre as contas, roas recalculado do agregado
	require.NotNil(t, resp.Summary)
	assert.Equal(t, "150.00", resp.Summary.Spend)
	assert.Equal(t, "300.00", resp.Summary.Revenue)
	assert.Equal(t, "2.00", resp.Summary.ROAS)
	assert.Equal(t, 3, resp.Summary.Purchases)
}

func TestListCampaigns_PartialAccountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	adAccountRepo.EXPECT().
		ListActiveByIntegration("int001").
		Return([]*domain.AdAccount{
			{ID: "a1", AccountID: "act_111", IsActive: true},
			{ID: "a2", AccountID: "act_222", IsActive: true},
		}, nil)

	client.EXPECT().
		ListCampaigns(gomock.Any(), "tok_abc", "act_111").
		Return(nil, &metadomain.APIError{
			Message: "Error validating access token",
			Type:    "OAuthException",
			Code:    190,
		})

	client.EXPECT().
		ListCampaigns(gomock.Any(), "tok_abc", "act_222").
		Return([]metadomain.RawCampaign{
			{ID: "c9", Name: "Sobrevivente", Status: "ACTIVE"},
		}, nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "c9", domain.DatePresetLast7d).
		Return(&metadomain.RawInsight{}, nil)

	resp, err := service.ListCampaigns(context.Background(), &domain.ListOptions{
		DatePreset: domain.DatePresetLast7d,
	})

	require.NoError(t, err)
	assert.True(t, resp.Connected)
	assert.Equal(t, 1, resp.Total)
	assert.Contains(t, resp.Error, "Token do Meta expirado ou inválido")
}

func TestListCampaigns_InsightFailureLeavesNilButCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	client.EXPECT().
		ListCampaigns(gomock.Any(), "tok_abc", "act_999").
		Return([]metadomain.RawCampaign{
			{ID: "ok", Name: "Com insights", Status: "ACTIVE"},
			{ID: "broken", Name: "Sem insights", Status: "ACTIVE"},
		}, nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "ok", domain.DatePresetLast30d).
		Return(purchaseInsight("80.00", "160.00", "2"), nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "broken", domain.DatePresetLast30d).
		Return(nil, &metadomain.APIError{Message: "timeout", Code: 1})

	resp, err := service.ListCampaigns(context.Background(), &domain.ListOptions{
		DatePreset: domain.DatePresetLast30d,
		AccountID:  "999", // sem prefixo, deve ser normalizado para act_999
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	var broken *domain.Campaign
	for _, campaign := range resp.Campaigns {
		if campaign.ID == "broken" {
			broken = campaign
		}
	}
	require.NotNil(t, broken)
	assert.Nil(t, broken.Insights)

	// A falha individual contribui zero, sem derrubar o agregado
	assert.Equal(t, "80.00", resp.Summary.Spend)
	assert.Equal(t, "2.00", resp.Summary.ROAS)
}

func TestListCampaigns_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(nil, nil)

	resp, err := service.ListCampaigns(context.Background(), &domain.ListOptions{
		DatePreset: domain.DatePresetLast30d,
	})

	require.NoError(t, err)
	assert.False(t, resp.Connected)
	assert.Empty(t, resp.Campaigns)
	assert.Equal(t, 0, resp.Total)
	// O painel usa essa mensagem para direcionar ao fluxo de configuração
	assert.Equal(t, "Meta Ads não configurado. Vá em Configurações para conectar.", resp.Error)
}

func TestResolveScope_LegacyFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integration := activeIntegration()
	integration.AccountID = stringPtr("123456")

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(integration, nil)

	adAccountRepo.EXPECT().
		ListActiveByIntegration("int001").
		Return([]*domain.AdAccount{}, nil)

	sc, connected, err := service.resolveScope("")

	require.NoError(t, err)
	assert.True(t, connected)
	assert.Equal(t, []string{"act_123456"}, sc.accounts)
	assert.Equal(t, "tok_abc", sc.token)
}

func TestResolveScope_EmptyScopeStillConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	adAccountRepo.EXPECT().
		ListActiveByIntegration("int001").
		Return(nil, nil)

	sc, connected, err := service.resolveScope("")

	require.NoError(t, err)
	assert.True(t, connected)
	assert.Empty(t, sc.accounts)
}

func TestAccountInsights_AggregatesAcrossAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	adAccountRepo.EXPECT().
		ListActiveByIntegration("int001").
		Return([]*domain.AdAccount{
			{ID: "a1", AccountID: "act_111", IsActive: true},
			{ID: "a2", AccountID: "act_222", IsActive: true},
		}, nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "act_111", domain.DatePresetThisMonth).
		Return(purchaseInsight("10.10", "20.20", "1"), nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "act_222", domain.DatePresetThisMonth).
		Return(purchaseInsight("0.20", "0.10", "1"), nil)

	resp, err := service.AccountInsights(context.Background(), &domain.ListOptions{
		DatePreset: domain.DatePresetThisMonth,
	})

	require.NoError(t, err)
	assert.True(t, resp.Connected)
	require.NotNil(t, resp.Insights)

	// Soma em centavos inteiros: 10.10+0.20 e 20.20+0.10 sem deriva de float
	assert.Equal(t, "10.30", resp.Insights.Spend)
	assert.Equal(t, "20.30", resp.Insights.Revenue)
	assert.Equal(t, 2, resp.Insights.Purchases)
}

func TestAccountInsights_AllAccountsFailReturnsNullAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	adAccountRepo := mocks.NewMockAdAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := NewService(integrationRepo, adAccountRepo, client, testConfig())

	integrationRepo.EXPECT().
		GetActiveByPlatform(domain.PlatformFacebook).
		Return(activeIntegration(), nil)

	adAccountRepo.EXPECT().
		ListActiveByIntegration("int001").
		Return([]*domain.AdAccount{
			{ID: "a1", AccountID: "act_111", IsActive: true},
		}, nil)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok_abc", "act_111", domain.DatePresetLast30d).
		Return(nil, &metadomain.APIError{Message: "timeout", Code: 1})

	resp, err := service.AccountInsights(context.Background(), &domain.ListOptions{
		DatePreset: domain.DatePresetLast30d,
	})

	require.NoError(t, err)
	assert.True(t, resp.Connected)
	// Falha em todas as contas é "não medido", nunca um agregado zerado
	assert.Nil(t, resp.Insights)
	assert.NotEmpty(t, resp.Error)
}

func TestSummarize_NoValidRecords(t *testing.T) {
	assert.Nil(t, summarize(nil))
	assert.Nil(t, summarize([]*domain.InsightRecord{nil, nil}))
}
