package integrating

import (
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrInvalidPlatform       = errors.New("plataforma inválida")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrFacebookNotConfigured = errors.New("integração do Facebook não configurada")
)

type Integrator interface {
	List() ([]*domain.Integration, error)
	Save(req *domain.SaveIntegrationRequest) (*domain.Integration, error)
	SetActive(id string, active bool) error
	Delete(id string) error

	ListAdAccounts() ([]*domain.AdAccount, error)
	AddAdAccount(req *domain.AddAdAccountRequest) (*domain.AdAccount, error)
	SetAdAccountActive(id string, active bool) error
	DeleteAdAccount(id string) error

	SelectableAccounts() ([]*domain.SelectableAccount, error)
}

type Service struct {
	integrationRepo repository.IntegrationRepository
	adAccountRepo   repository.AdAccountRepository
}

func NewService(integrationRepo repository.IntegrationRepository, adAccountRepo repository.AdAccountRepository) Integrator {
	return &Service{
		integrationRepo: integrationRepo,
		adAccountRepo:   adAccountRepo,
	}
}

// List devolve as integrações com a chave mascarada: o painel nunca recebe
// o token completo de volta.
func (s *Service) List() ([]*domain.Integration, error) {
	integrations, err := s.integrationRepo.List()
	if err != nil {
		return nil, err
	}

	for _, integration := range integrations {
		maskAPIKey(integration)
	}

	return integrations, nil
}

func maskAPIKey(integration *domain.Integration) {
	if integration.APIKey == nil {
		return
	}

	key := *integration.APIKey
	if len(key) > 8 {
		masked := key[:4] + "..." + key[len(key)-4:]
		integration.APIKey = &masked
		return
	}

	masked := "***"
	integration.APIKey = &masked
}

func (s *Service) Save(req *domain.SaveIntegrationRequest) (*domain.Integration, error) {
	if !req.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	if req.APIKey == "" {
		return nil, ErrMissingRequiredData
	}

	if req.Platform == domain.PlatformFacebook {
		req.AccountID = domain.NormalizeMetaAccountID(req.AccountID)
	}

	integration, err := s.integrationRepo.Save(req)
	if err != nil {
		return nil, err
	}

	maskAPIKey(integration)
	return integration, nil
}

func (s *Service) SetActive(id string, active bool) error {
	return s.integrationRepo.SetActive(id, active)
}

func (s *Service) Delete(id string) error {
	return s.integrationRepo.Delete(id)
}

func (s *Service) ListAdAccounts() ([]*domain.AdAccount, error) {
	integration, err := s.integrationRepo.GetByPlatform(domain.PlatformFacebook)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return []*domain.AdAccount{}, nil
	}

	return s.adAccountRepo.ListByIntegration(integration.ID)
}

func (s *Service) AddAdAccount(req *domain.AddAdAccountRequest) (*domain.AdAccount, error) {
	if req.Name == "" || req.AccountID == "" {
		return nil, ErrMissingRequiredData
	}

	integration, err := s.integrationRepo.GetByPlatform(domain.PlatformFacebook)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, ErrFacebookNotConfigured
	}

	return s.adAccountRepo.Create(integration.ID, req)
}

func (s *Service) SetAdAccountActive(id string, active bool) error {
	return s.adAccountRepo.SetActive(id, active)
}

func (s *Service) DeleteAdAccount(id string) error {
	return s.adAccountRepo.Delete(id)
}

// SelectableAccounts monta o seletor de contas do painel. Quando só existe
// o campo legado de conta única, a lista tem uma entrada sintética para que
// o seletor nunca fique vazio com integração configurada.
func (s *Service) SelectableAccounts() ([]*domain.SelectableAccount, error) {
	integration, err := s.integrationRepo.GetActiveByPlatform(domain.PlatformFacebook)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return []*domain.SelectableAccount{}, nil
	}

	adAccounts, err := s.adAccountRepo.ListActiveByIntegration(integration.ID)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.SelectableAccount, 0, len(adAccounts))
	for _, account := range adAccounts {
		accounts = append(accounts, &domain.SelectableAccount{
			ID:        account.ID,
			Name:      account.Name,
			AccountID: account.AccountID,
		})
	}

	if len(accounts) == 0 && integration.AccountID != nil && *integration.AccountID != "" {
		accounts = append(accounts, &domain.SelectableAccount{
			ID:        "legacy",
			Name:      "Conta Padrão",
			AccountID: *integration.AccountID,
		})
	}

	return accounts, nil
}
