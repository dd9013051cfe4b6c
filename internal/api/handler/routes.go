package handler

import (
	"net/http"

	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/api/handler/router"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/adlibrary"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/advertising"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/authenticating"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/integrating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Meta(inquirer advertising.Inquirer, mutator advertising.Mutator, integrator integrating.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaigns(inquirer),
		},
		{
			Path:    "/v1/meta/adsets",
			Method:  http.MethodGet,
			Handler: GetAdSets(inquirer),
		},
		{
			Path:    "/v1/meta/ads",
			Method:  http.MethodGet,
			Handler: GetAds(inquirer),
		},
		{
			Path:    "/v1/meta/insights",
			Method:  http.MethodGet,
			Handler: GetAccountInsights(inquirer),
		},
		{
			Path:    "/v1/meta/accounts",
			Method:  http.MethodGet,
			Handler: GetSelectableAccounts(integrator),
		},
		{
			Path:    "/v1/meta/campaigns/update",
			Method:  http.MethodPost,
			Handler: UpdateCampaign(mutator),
		},
		{
			Path:    "/v1/meta/adsets/update",
			Method:  http.MethodPost,
			Handler: UpdateAdSet(mutator),
		},
		{
			Path:    "/v1/meta/ads/update",
			Method:  http.MethodPost,
			Handler: UpdateAd(mutator),
		},
	}
}

func AdLibrary(service adlibrary.Searcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ad-library/search",
			Method:  http.MethodGet,
			Handler: SearchArchive(service),
		},
		{
			Path:    "/v1/ad-library/saved",
			Method:  http.MethodGet,
			Handler: ListSavedAds(service),
		},
		{
			Path:    "/v1/ad-library/saved",
			Method:  http.MethodPost,
			Handler: SaveAd(service),
		},
		{
			Path:    "/v1/ad-library/saved/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSavedAd(service),
		},
		{
			Path:    "/v1/ad-library/ai",
			Method:  http.MethodPost,
			Handler: RunAI(service),
		},
	}
}

func Integrations(service integrating.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(service),
		},
		{
			Path:    "/v1/integrations",
			Method:  http.MethodPost,
			Handler: SaveIntegration(service),
		},
		{
			Path:    "/v1/integrations/:id/active",
			Method:  http.MethodPut,
			Handler: SetIntegrationActive(service),
		},
		{
			Path:    "/v1/integrations/:id",
			Method:  http.MethodDelete,
			Handler: DeleteIntegration(service),
		},
		{
			Path:    "/v1/ad-accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
		{
			Path:    "/v1/ad-accounts",
			Method:  http.MethodPost,
			Handler: AddAdAccount(service),
		},
		{
			Path:    "/v1/ad-accounts/:id/active",
			Method:  http.MethodPut,
			Handler: SetAdAccountActive(service),
		},
		{
			Path:    "/v1/ad-accounts/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAdAccount(service),
		},
	}
}

func Credentials(repo repository.CredentialRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/credentials",
			Method:  http.MethodGet,
			Handler: ListCredentials(repo),
		},
		{
			Path:    "/v1/credentials",
			Method:  http.MethodPost,
			Handler: CreateCredential(repo),
		},
		{
			Path:    "/v1/credentials/:id",
			Method:  http.MethodPut,
			Handler: UpdateCredential(repo),
		},
		{
			Path:    "/v1/credentials/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCredential(repo),
		},
	}
}

func Financial(repo repository.FinancialRecordRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/financial",
			Method:  http.MethodGet,
			Handler: ListFinancialRecords(repo),
		},
		{
			Path:    "/v1/financial",
			Method:  http.MethodPost,
			Handler: CreateFinancialRecord(repo),
		},
		{
			Path:    "/v1/financial/:id",
			Method:  http.MethodPut,
			Handler: UpdateFinancialRecord(repo),
		},
		{
			Path:    "/v1/financial/:id",
			Method:  http.MethodDelete,
			Handler: DeleteFinancialRecord(repo),
		},
	}
}

func Tasks(repo repository.TaskRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tasks",
			Method:  http.MethodGet,
			Handler: ListTasks(repo),
		},
		{
			Path:    "/v1/tasks",
			Method:  http.MethodPost,
			Handler: CreateTask(repo),
		},
		{
			Path:    "/v1/tasks/:id",
			Method:  http.MethodPut,
			Handler: UpdateTask(repo),
		},
		{
			Path:    "/v1/tasks/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTask(repo),
		},
	}
}

func Products(repo repository.ProductRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(repo),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(repo),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(repo),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(repo),
		},
	}
}
