package advertising

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
)

type Service struct {
	integrationRepo repository.IntegrationRepository
	adAccountRepo   repository.AdAccountRepository
	client          metaclient.Client
	cfg             *config.Config
}

func NewService(
	integrationRepo repository.IntegrationRepository,
	adAccountRepo repository.AdAccountRepository,
	client metaclient.Client,
	cfg *config.Config,
) *Service {
	return &Service{
		integrationRepo: integrationRepo,
		adAccountRepo:   adAccountRepo,
		client:          client,
		cfg:             cfg,
	}
}

// Mensagem exibida quando não há integração do Facebook com token: o
// painel direciona o usuário para o fluxo de configuração.
const notConfiguredMessage = "Meta Ads não configurado. Vá em Configurações para conectar."

// scope é o conjunto de contas resolvido para uma consulta, junto com o
// token da integração que as cobre.
type scope struct {
	token    string
	accounts []string
}

// resolveScope aplica a precedência de escopo: account_id explícito, senão
// todas as AdAccounts ativas, senão o campo legado de conta única da
// integração. Escopo vazio não é erro — a resposta sai conectada e vazia.
func (s *Service) resolveScope(accountID string) (*scope, bool, error) {
	integration, err := s.integrationRepo.GetActiveByPlatform(domain.PlatformFacebook)
	if err != nil {
		return nil, false, err
	}

	if !integration.HasCredential() {
		return nil, false, nil
	}

	sc := &scope{token: *integration.APIKey}

	if accountID != "" {
		sc.accounts = []string{domain.NormalizeMetaAccountID(accountID)}
		return sc, true, nil
	}

	adAccounts, err := s.adAccountRepo.ListActiveByIntegration(integration.ID)
	if err != nil {
		return nil, false, err
	}

	for _, account := range adAccounts {
		sc.accounts = append(sc.accounts, domain.NormalizeMetaAccountID(account.AccountID))
	}

	if len(sc.accounts) == 0 && integration.AccountID != nil && *integration.AccountID != "" {
		sc.accounts = []string{domain.NormalizeMetaAccountID(*integration.AccountID)}
	}

	return sc, true, nil
}

// classifyError traduz um erro da Graph API para a mensagem exibida no
// painel. O detalhe técnico fica no log, não na resposta.
func classifyError(accountID string, err error) string {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsInvalidCredential():
			return "Token do Meta expirado ou inválido. Reconecte a integração."
		case apiErr.IsPermissionDenied():
			return "Sem permissão para acessar a conta " + accountID + "."
		default:
			return "Erro da API do Meta na conta " + accountID + ": " + apiErr.Message
		}
	}
	return "Falha ao consultar a conta " + accountID + "."
}

func (s *Service) ListCampaigns(ctx context.Context, opts *domain.ListOptions) (*domain.CampaignListResponse, error) {
	resp := &domain.CampaignListResponse{Campaigns: make([]*domain.Campaign, 0)}

	sc, connected, err := s.resolveScope(opts.AccountID)
	if err != nil {
		return nil, err
	}
	if !connected {
		resp.Error = notConfiguredMessage
		return resp, nil
	}
	resp.Connected = true

	var failures []string

	// Contas em sequência: uma conta quebrada não derruba as demais.
	for _, accountID := range sc.accounts {
		rawCampaigns, err := s.client.ListCampaigns(ctx, sc.token, accountID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"account_id": accountID, "error": err}).
				Error("Erro ao listar campanhas da conta")
			failures = append(failures, classifyError(accountID, err))
			continue
		}

		for i := range rawCampaigns {
			resp.Campaigns = append(resp.Campaigns, meta.CampaignFromRaw(&rawCampaigns[i]))
		}
	}

	s.attachInsights(ctx, sc.token, opts.DatePreset, len(resp.Campaigns),
		func(i int) string { return resp.Campaigns[i].ID },
		func(i int, record *domain.InsightRecord) { resp.Campaigns[i].Insights = record },
	)

	resp.Total = len(resp.Campaigns)
	resp.Summary = summarizeCampaigns(resp.Campaigns)
	resp.Error = strings.Join(failures, " ")

	return resp, nil
}

func (s *Service) ListAdSets(ctx context.Context, opts *domain.ListOptions) (*domain.AdSetListResponse, error) {
	resp := &domain.AdSetListResponse{AdSets: make([]*domain.AdSet, 0)}

	sc, connected, err := s.resolveScope(opts.AccountID)
	if err != nil {
		return nil, err
	}
	if !connected {
		resp.Error = notConfiguredMessage
		return resp, nil
	}
	resp.Connected = true

	// Com campaign_id o pai da listagem é a campanha; sem ele, cada conta
	// do escopo.
	parents := sc.accounts
	if opts.CampaignID != "" {
		parents = []string{opts.CampaignID}
	}

	var failures []string

	for _, parentID := range parents {
		rawAdSets, err := s.client.ListAdSets(ctx, sc.token, parentID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"parent_id": parentID, "error": err}).
				Error("Erro ao listar conjuntos de anúncios")
			failures = append(failures, classifyError(parentID, err))
			continue
		}

		for i := range rawAdSets {
			resp.AdSets = append(resp.AdSets, meta.AdSetFromRaw(&rawAdSets[i]))
		}
	}

	s.attachInsights(ctx, sc.token, opts.DatePreset, len(resp.AdSets),
		func(i int) string { return resp.AdSets[i].ID },
		func(i int, record *domain.InsightRecord) { resp.AdSets[i].Insights = record },
	)

	resp.Total = len(resp.AdSets)
	resp.Summary = summarizeAdSets(resp.AdSets)
	resp.Error = strings.Join(failures, " ")

	return resp, nil
}

func (s *Service) ListAds(ctx context.Context, opts *domain.ListOptions) (*domain.AdListResponse, error) {
	resp := &domain.AdListResponse{Ads: make([]*domain.Ad, 0)}

	sc, connected, err := s.resolveScope(opts.AccountID)
	if err != nil {
		return nil, err
	}
	if !connected {
		resp.Error = notConfiguredMessage
		return resp, nil
	}
	resp.Connected = true

	parents := sc.accounts
	if opts.AdSetID != "" {
		parents = []string{opts.AdSetID}
	} else if opts.CampaignID != "" {
		parents = []string{opts.CampaignID}
	}

	var failures []string

	for _, parentID := range parents {
		rawAds, err := s.client.ListAds(ctx, sc.token, parentID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"parent_id": parentID, "error": err}).
				Error("Erro ao listar anúncios")
			failures = append(failures, classifyError(parentID, err))
			continue
		}

		for i := range rawAds {
			resp.Ads = append(resp.Ads, meta.AdFromRaw(&rawAds[i]))
		}
	}

	s.attachInsights(ctx, sc.token, opts.DatePreset, len(resp.Ads),
		func(i int) string { return resp.Ads[i].ID },
		func(i int, record *domain.InsightRecord) { resp.Ads[i].Insights = record },
	)

	resp.Total = len(resp.Ads)
	resp.Summary = summarizeAds(resp.Ads)
	resp.Error = strings.Join(failures, " ")

	return resp, nil
}

// AccountInsights devolve o agregado das contas do escopo sem listar
// entidades: um GetInsights por conta, somado em centavos.
func (s *Service) AccountInsights(ctx context.Context, opts *domain.ListOptions) (*domain.AccountInsightsResponse, error) {
	resp := &domain.AccountInsightsResponse{}

	sc, connected, err := s.resolveScope(opts.AccountID)
	if err != nil {
		return nil, err
	}
	if !connected {
		resp.Error = notConfiguredMessage
		return resp, nil
	}
	resp.Connected = true

	var failures []string
	records := make([]*domain.InsightRecord, 0, len(sc.accounts))

	for _, accountID := range sc.accounts {
		raw, err := s.client.GetInsights(ctx, sc.token, accountID, opts.DatePreset)
		if err != nil {
			logrus.WithFields(logrus.Fields{"account_id": accountID, "error": err}).
				Error("Erro ao buscar insights da conta")
			failures = append(failures, classifyError(accountID, err))
			continue
		}
		records = append(records, meta.NormalizeInsight(raw))
	}

	resp.Insights = summarize(records)
	resp.Error = strings.Join(failures, " ")

	return resp, nil
}

// attachInsights busca os insights de cada entidade em paralelo, limitado
// por cfg.Meta.MaxConcurrentInsights. Falha individual deixa o campo nil e
// segue — a listagem nunca quebra por causa de uma entidade.
func (s *Service) attachInsights(
	ctx context.Context,
	token string,
	datePreset domain.DatePreset,
	total int,
	entityID func(i int) string,
	assign func(i int, record *domain.InsightRecord),
) {
	if total == 0 {
		return
	}

	maxConcurrent := s.cfg.Meta.MaxConcurrentInsights
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			id := entityID(i)
			raw, err := s.client.GetInsights(ctx, token, id, datePreset)
			if err != nil {
				logrus.WithFields(logrus.Fields{"entity_id": id, "error": err}).
					Warn("Erro ao buscar insights da entidade")
				return
			}

			assign(i, meta.NormalizeInsight(raw))
		}(i)
	}

	wg.Wait()
}
