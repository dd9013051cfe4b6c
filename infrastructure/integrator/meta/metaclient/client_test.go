package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.RequestTimeout = 5 * time.Second

	return &MetaClient{
		Cfg:  cfg,
		http: &http.Client{Timeout: cfg.Meta.RequestTimeout},
	}
}

func TestListCampaigns(t *testing.T) {
	t.Run("lista campanhas com o token na query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/act_123/campaigns", r.URL.Path)
			assert.Equal(t, "tok_abc", r.URL.Query().Get("access_token"))

			w.Write([]byte(`{"data":[{"id":"c1","name":"Campanha","status":"ACTIVE","daily_budget":"2550"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		campaigns, err := client.ListCampaigns(context.Background(), "tok_abc", "act_123")

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "c1", campaigns[0].ID)
		assert.Equal(t, "2550", campaigns[0].DailyBudget)
	})

	t.Run("status 200 com erro no corpo vira APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListCampaigns(context.Background(), "tok_expirado", "act_123")

		var apiErr *metadomain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 190, apiErr.Code)
		assert.True(t, apiErr.IsInvalidCredential())
	})

	t.Run("status não-2xx sem corpo de erro também vira APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListCampaigns(context.Background(), "tok_abc", "act_123")

		var apiErr *metadomain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})
}

func TestGetInsights(t *testing.T) {
	t.Run("data vazio significa entrega zero, não erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/c1/insights", r.URL.Path)
			assert.Equal(t, "last_7d", r.URL.Query().Get("date_preset"))

			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		insight, err := client.GetInsights(context.Background(), "tok_abc", "c1", domain.DatePresetLast7d)

		require.NoError(t, err)
		require.NotNil(t, insight)
		assert.Empty(t, insight.Spend)
	})

	t.Run("primeiro registro de data é devolvido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"spend":"250.50","actions":[{"action_type":"purchase","value":"12"}]}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		insight, err := client.GetInsights(context.Background(), "tok_abc", "c1", domain.DatePresetLast30d)

		require.NoError(t, err)
		assert.Equal(t, "250.50", insight.Spend)
		assert.Equal(t, "12", metadomain.FindAction(insight.Actions, "purchase"))
	})
}

func TestSearchAdsArchive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ads_archive", r.URL.Path)
		assert.Equal(t, "tenis", r.URL.Query().Get("search_terms"))
		assert.Equal(t, `["BR"]`, r.URL.Query().Get("ad_reached_countries"))
		assert.Equal(t, "cursor_in", r.URL.Query().Get("after"))

		w.Write([]byte(`{"data":[{"id":"ad1","page_name":"Loja X"}],"paging":{"cursors":{"after":"cursor_out"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	page, err := client.SearchAdsArchive(context.Background(), "tok_abc", &domain.ArchiveSearchFilters{
		SearchTerms:  "tenis",
		Country:      "BR",
		ActiveStatus: "ALL",
		Limit:        "25",
		After:        "cursor_in",
	})

	require.NoError(t, err)
	require.Len(t, page.Ads, 1)
	assert.Equal(t, "ad1", page.Ads[0].ID)
	assert.Equal(t, "cursor_out", page.After)
}

func TestUpdateEntity(t *testing.T) {
	t.Run("envia form com token e campos", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/c1", r.URL.Path)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "tok_abc", r.PostForm.Get("access_token"))
			assert.Equal(t, "PAUSED", r.PostForm.Get("status"))
			assert.Equal(t, "2550", r.PostForm.Get("daily_budget"))

			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		params := url.Values{}
		params.Set("status", "PAUSED")
		params.Set("daily_budget", "2550")

		err := client.UpdateEntity(context.Background(), "tok_abc", "c1", params)

		assert.NoError(t, err)
	})

	t.Run("erro da API sobe com a mensagem original", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Budget below minimum","type":"FacebookApiException","code":100}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		params := url.Values{}
		params.Set("daily_budget", "1")

		err := client.UpdateEntity(context.Background(), "tok_abc", "c1", params)

		var apiErr *metadomain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Budget below minimum", apiErr.Message)
	})
}
