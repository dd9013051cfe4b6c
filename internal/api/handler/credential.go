package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/apiErrors"
)

func ListCredentials(repo repository.CredentialRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credentials, err := repo.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar acessos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar acessos", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"credentials": credentials})
	}
}

func CreateCredential(repo repository.CredentialRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credential domain.Credential

		if err := json.NewDecoder(r.Body).Decode(&credential); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if credential.Service == "" || credential.Username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Serviço e usuário são obrigatórios", nil)
			return
		}

		created, err := repo.Create(&credential)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar acesso")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar acesso", nil)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

func UpdateCredential(repo repository.CredentialRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var credential domain.Credential
		if err := json.NewDecoder(r.Body).Decode(&credential); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		credential.ID = id

		updated, err := repo.Update(&credential)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Acesso não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao atualizar acesso")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar acesso", nil)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteCredential(repo repository.CredentialRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := repo.Delete(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Acesso não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao excluir acesso")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir acesso", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
