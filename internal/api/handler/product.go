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

func ListProducts(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := repo.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"products": products})
	}
}

func CreateProduct(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product

		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if product.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome é obrigatório", nil)
			return
		}

		if product.Status == "" {
			product.Status = "IDEA"
		}

		created, err := repo.Create(&product)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

func UpdateProduct(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		product.ID = id

		updated, err := repo.Update(&product)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao atualizar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteProduct(repo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := repo.Delete(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao excluir produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir produto", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
