package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.RawAd `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// ListAds lista os anúncios de um pai (conta ou conjunto de anúncios).
func (c *MetaClient) ListAds(ctx context.Context, token, parentID string) ([]metadomain.RawAd, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,creative{id,thumbnail_url,effective_object_story_id},adset_id,campaign_id")
	params.Set("limit", "100")

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/ads", parentID), params)
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
