package advertising

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/utils"
)

var ErrIntegrationNotConfigured = errors.New("integração do Meta não configurada")

// MutationService escreve em entidades remotas do Meta. As escritas são
// single-shot: sem retry, sem releitura — o painel reconcilia com a próxima
// listagem.
type MutationService struct {
	integrationRepo repository.IntegrationRepository
	client          metaclient.Client
}

func NewMutationService(integrationRepo repository.IntegrationRepository, client metaclient.Client) *MutationService {
	return &MutationService{
		integrationRepo: integrationRepo,
		client:          client,
	}
}

func (s *MutationService) token() (string, error) {
	integration, err := s.integrationRepo.GetActiveByPlatform(domain.PlatformFacebook)
	if err != nil {
		return "", err
	}
	if !integration.HasCredential() {
		return "", ErrIntegrationNotConfigured
	}
	return *integration.APIKey, nil
}

func (s *MutationService) UpdateCampaign(ctx context.Context, req *domain.UpdateCampaignRequest) error {
	if req.CampaignID == "" {
		return errors.New("campaignId é obrigatório")
	}

	params := url.Values{}
	if req.Status != nil {
		params.Set("status", *req.Status)
	}
	if req.Name != nil {
		params.Set("name", *req.Name)
	}
	if req.DailyBudget != nil {
		params.Set("daily_budget", strconv.FormatInt(utils.MoneyToMinorUnits(*req.DailyBudget), 10))
	}
	if req.LifetimeBudget != nil {
		params.Set("lifetime_budget", strconv.FormatInt(utils.MoneyToMinorUnits(*req.LifetimeBudget), 10))
	}

	return s.update(ctx, req.CampaignID, params)
}

func (s *MutationService) UpdateAdSet(ctx context.Context, req *domain.UpdateAdSetRequest) error {
	if req.AdSetID == "" {
		return errors.New("adSetId é obrigatório")
	}

	params := url.Values{}
	if req.Status != nil {
		params.Set("status", *req.Status)
	}
	if req.DailyBudget != nil {
		params.Set("daily_budget", strconv.FormatInt(utils.MoneyToMinorUnits(*req.DailyBudget), 10))
	}

	return s.update(ctx, req.AdSetID, params)
}

func (s *MutationService) UpdateAd(ctx context.Context, req *domain.UpdateAdRequest) error {
	if req.AdID == "" {
		return errors.New("adId é obrigatório")
	}

	params := url.Values{}
	if req.Status != nil {
		params.Set("status", *req.Status)
	}

	return s.update(ctx, req.AdID, params)
}

func (s *MutationService) update(ctx context.Context, entityID string, params url.Values) error {
	if len(params) == 0 {
		return errors.New("nenhum campo para atualizar")
	}

	token, err := s.token()
	if err != nil {
		return err
	}

	// O erro da Graph API sobe sem tradução: a mensagem remota é o que o
	// painel mostra para o operador.
	return s.client.UpdateEntity(ctx, token, entityID, params)
}
