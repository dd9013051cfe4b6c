package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
)

type ResponseAdSets struct {
	Data   []metadomain.RawAdSet `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// ListAdSets lista os conjuntos de anúncios de um pai, que pode ser uma
// conta (act_...) ou uma campanha — o caminho da Graph API é o mesmo.
func (c *MetaClient) ListAdSets(ctx context.Context, token, parentID string) ([]metadomain.RawAdSet, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,daily_budget,lifetime_budget,campaign_id,optimization_goal,bid_strategy")
	params.Set("limit", "100")

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/adsets", parentID), params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
