package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
)

type Client interface {
	ListCampaigns(ctx context.Context, token, accountID string) ([]metadomain.RawCampaign, error)
	ListAdSets(ctx context.Context, token, parentID string) ([]metadomain.RawAdSet, error)
	ListAds(ctx context.Context, token, parentID string) ([]metadomain.RawAd, error)
	GetInsights(ctx context.Context, token, entityID string, datePreset domain.DatePreset) (*metadomain.RawInsight, error)
	SearchAdsArchive(ctx context.Context, token string, filters *domain.ArchiveSearchFilters) (*metadomain.ArchivePage, error)
	UpdateEntity(ctx context.Context, token, entityID string, params url.Values) error
}

type MetaClient struct {
	Cfg  *config.Config
	http *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		// O endpoint de insights pode ser lento por entidade sob fan-out
		// alto, então o timeout vale por requisição.
		http: &http.Client{Timeout: cfg.Meta.RequestTimeout},
	}
}

// doGet executa um GET autenticado e devolve o corpo já validado.
func (c *MetaClient) doGet(ctx context.Context, token, path string, params url.Values) ([]byte, error) {
	params.Set("access_token", token)
	fullURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// doForm executa um POST form-encoded (mutação de entidade).
func (c *MetaClient) doForm(ctx context.Context, token, path string, params url.Values) ([]byte, error) {
	params.Set("access_token", token)
	fullURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// handleResponse lê o corpo e classifica erros. O corpo é verificado antes
// do status HTTP: a API do Meta pode devolver 200 com um objeto de erro
// embutido.
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error.Message != "" || errResp.Error.Code != 0 {
			return nil, &metadomain.APIError{
				Message:      errResp.Error.Message,
				Type:         errResp.Error.Type,
				Code:         errResp.Error.Code,
				ErrorSubcode: errResp.Error.ErrorSubcode,
				StatusCode:   resp.StatusCode,
			}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &metadomain.APIError{
			Message:    fmt.Sprintf("resposta inesperada da API do Meta: %s", resp.Status),
			StatusCode: resp.StatusCode,
		}
	}

	return body, nil
}
