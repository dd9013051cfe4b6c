package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/advertising"
	advertisingmocks "github.com/QUATTROMKT/info-sistema/internal/usecases/advertising/mocks"
	"go.uber.org/mock/gomock"
)

func TestParseListOptions(t *testing.T) {
	t.Run("sem date_preset assume last_30d", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/meta/campaigns", nil)

		opts, ok := parseListOptions(r)

		require.True(t, ok)
		assert.Equal(t, domain.DatePresetLast30d, opts.DatePreset)
	})

	t.Run("preset válido é repassado junto com os filtros", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/meta/ads?date_preset=last_7d&account_id=act_123&campaign_id=c1&adset_id=s1", nil)

		opts, ok := parseListOptions(r)

		require.True(t, ok)
		assert.Equal(t, domain.DatePresetLast7d, opts.DatePreset)
		assert.Equal(t, "act_123", opts.AccountID)
		assert.Equal(t, "c1", opts.CampaignID)
		assert.Equal(t, "s1", opts.AdSetID)
	})

	t.Run("preset desconhecido é rejeitado antes da API remota", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/meta/campaigns?date_preset=last_90d", nil)

		_, ok := parseListOptions(r)

		assert.False(t, ok)
	})
}

func TestUpdateCampaignHandler(t *testing.T) {
	t.Run("recusa da graph api vira corpo {error} com status 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mutator := advertisingmocks.NewMockMutator(ctrl)
		mutator.EXPECT().
			UpdateCampaign(gomock.Any(), gomock.Any()).
			Return(&metadomain.APIError{
				Message: "The daily budget is below the minimum",
				Type:    "FacebookApiException",
				Code:    100,
			})

		r := httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns/update",
			strings.NewReader(`{"campaignId":"c1","dailyBudget":0.01}`))
		w := httptest.NewRecorder()

		UpdateCampaign(mutator)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "The daily budget is below the minimum", body["error"])
	})

	t.Run("integração ausente também é erro de aplicação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mutator := advertisingmocks.NewMockMutator(ctrl)
		mutator.EXPECT().
			UpdateCampaign(gomock.Any(), gomock.Any()).
			Return(advertising.ErrIntegrationNotConfigured)

		r := httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns/update",
			strings.NewReader(`{"campaignId":"c1","status":"PAUSED"}`))
		w := httptest.NewRecorder()

		UpdateCampaign(mutator)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("sucesso devolve success true", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mutator := advertisingmocks.NewMockMutator(ctrl)
		mutator.EXPECT().
			UpdateCampaign(gomock.Any(), gomock.Any()).
			Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns/update",
			strings.NewReader(`{"campaignId":"c1","status":"ACTIVE"}`))
		w := httptest.NewRecorder()

		UpdateCampaign(mutator)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body["success"])
	})

	t.Run("requisição malformada mantém o envelope de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mutator := advertisingmocks.NewMockMutator(ctrl)

		r := httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns/update",
			strings.NewReader(`{invalido`))
		w := httptest.NewRecorder()

		UpdateCampaign(mutator)(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "VAL_001", body["code"])
	})
}
