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

type ResponseArchive struct {
	Data   []metadomain.RawArchiveAd `json:"data"`
	Paging metadomain.Paging         `json:"paging"`
}

// SearchAdsArchive consulta a Ad Library (ads_archive). O cursor "after" é
// repassado sem interpretação; o chamador decide se pede a próxima página.
func (c *MetaClient) SearchAdsArchive(ctx context.Context, token string, filters *domain.ArchiveSearchFilters) (*metadomain.ArchivePage, error) {
	params := url.Values{}
	params.Set("search_terms", filters.SearchTerms)
	params.Set("ad_reached_countries", fmt.Sprintf("[%q]", filters.Country))
	params.Set("ad_active_status", filters.ActiveStatus)
	params.Set("limit", filters.Limit)
	params.Set("fields", "id,ad_creative_bodies,ad_creative_link_captions,ad_creative_link_titles,ad_creative_link_descriptions,ad_delivery_start_time,ad_delivery_stop_time,bylines,publisher_platforms,page_id,page_name,ad_snapshot_url,estimated_audience_size,languages,impressions,spend")

	if filters.MediaType != "" {
		params.Set("media_type", filters.MediaType)
	}
	if filters.Platform != "" {
		params.Set("publisher_platforms", fmt.Sprintf("[%q]", filters.Platform))
	}
	if filters.Language != "" {
		params.Set("languages", fmt.Sprintf("[%q]", filters.Language))
	}
	if filters.After != "" {
		params.Set("after", filters.After)
	}

	body, err := c.doGet(ctx, token, "ads_archive", params)
	if err != nil {
		return nil, err
	}

	var response ResponseArchive
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &metadomain.ArchivePage{
		Ads:   response.Data,
		After: response.Paging.Cursors.After,
	}, nil
}
