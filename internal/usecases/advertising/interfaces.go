package advertising

import (
	"context"

	"github.com/QUATTROMKT/info-sistema/internal/domain"
)

// Inquirer agrega métricas de anúncios de uma ou várias contas do Meta.
type Inquirer interface {
	ListCampaigns(ctx context.Context, opts *domain.ListOptions) (*domain.CampaignListResponse, error)
	ListAdSets(ctx context.Context, opts *domain.ListOptions) (*domain.AdSetListResponse, error)
	ListAds(ctx context.Context, opts *domain.ListOptions) (*domain.AdListResponse, error)
	AccountInsights(ctx context.Context, opts *domain.ListOptions) (*domain.AccountInsightsResponse, error)
}

// Mutator aplica mudanças em entidades remotas do Meta. Sem retry e sem
// releitura: o chamador relê o estado com uma nova listagem.
type Mutator interface {
	UpdateCampaign(ctx context.Context, req *domain.UpdateCampaignRequest) error
	UpdateAdSet(ctx context.Context, req *domain.UpdateAdSetRequest) error
	UpdateAd(ctx context.Context, req *domain.UpdateAdRequest) error
}
