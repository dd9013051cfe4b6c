package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
)

type ResponseInsights struct {
	Data   []metadomain.RawInsight `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetInsights busca o payload de insights de qualquer entidade (conta,
// campanha, conjunto ou anúncio). Data vazio significa entrega zero no
// período — devolvemos um RawInsight vazio, não um erro.
func (c *MetaClient) GetInsights(ctx context.Context, token, entityID string, datePreset domain.DatePreset) (*metadomain.RawInsight, error) {
	params := url.Values{}
	params.Set("fields", "spend,impressions,clicks,cpc,cpm,ctr,actions,action_values,cost_per_action_type")
	params.Set("date_preset", string(datePreset))

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/insights", entityID), params)
	if err != nil {
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return &metadomain.RawInsight{}, nil
	}

	return &response.Data[0], nil
}
