package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/integrating"
	"github.com/QUATTROMKT/info-sistema/pkg/apiErrors"
)

type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

func ListIntegrations(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrations, err := service.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar integrações")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar integrações", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"integrations": integrations})
	}
}

func SaveIntegration(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveIntegrationRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		integration, err := service.Save(&req)
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, integration)
	}
}

func SetIntegrationActive(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetActive(id, req.IsActive); err != nil {
			handleIntegrationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func DeleteIntegration(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id); err != nil {
			handleIntegrationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func ListAdAccounts(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAdAccounts()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar contas de anúncio")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas de anúncio", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
	}
}

func AddAdAccount(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddAdAccountRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		account, err := service.AddAdAccount(&req)
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, account)
	}
}

func SetAdAccountActive(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetAdAccountActive(id, req.IsActive); err != nil {
			handleIntegrationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func DeleteAdAccount(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAdAccount(id); err != nil {
			handleIntegrationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func handleIntegrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, integrating.ErrInvalidPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma inválida", nil)
	case errors.Is(err, integrating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", nil)
	case errors.Is(err, integrating.ErrFacebookNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Integração do Facebook não configurada", nil)
	case errors.Is(err, repository.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Registro não encontrado", nil)
	default:
		logrus.WithError(err).Error("Erro em operação de integração")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
