package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.RawCampaign `json:"data"`
	Paging metadomain.Paging        `json:"paging"`
}

// ListCampaigns lista as campanhas de uma conta de anúncios.
func (c *MetaClient) ListCampaigns(ctx context.Context, token, accountID string) ([]metadomain.RawCampaign, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,objective,daily_budget,lifetime_budget,created_time,updated_time")
	params.Set("limit", "50")

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/campaigns", accountID), params)
	if err != nil {
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
