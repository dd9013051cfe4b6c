package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/adlibrary"
	"github.com/QUATTROMKT/info-sistema/pkg/apiErrors"
)

func SearchArchive(service adlibrary.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		searchTerms := query.Get("search_terms")
		if searchTerms == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "search_terms é obrigatório", nil)
			return
		}

		filters := &domain.ArchiveSearchFilters{
			SearchTerms:  searchTerms,
			Country:      query.Get("country"),
			MediaType:    query.Get("media_type"),
			ActiveStatus: query.Get("active_status"),
			Platform:     query.Get("platform"),
			Language:     query.Get("language"),
			After:        query.Get("after"),
			Limit:        query.Get("limit"),
		}

		resp, err := service.Search(r.Context(), filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar na Ad Library")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar na Ad Library", nil)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func ListSavedAds(service adlibrary.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ads, err := service.ListSaved()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar anúncios salvos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar anúncios salvos", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"ads": ads, "total": len(ads)})
	}
}

func SaveAd(service adlibrary.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveAdRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.SaveAd(&req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao salvar anúncio")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func DeleteSavedAd(service adlibrary.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não fornecido", nil)
			return
		}

		if err := service.DeleteSaved(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Anúncio salvo não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao excluir anúncio salvo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao excluir anúncio salvo", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func RunAI(service adlibrary.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AIRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.RunAI(r.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, adlibrary.ErrAINotConfigured):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Integração de IA não configurada", nil)
			case errors.Is(err, adlibrary.ErrMissingAdText):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Texto do anúncio é obrigatório", nil)
			default:
				logrus.WithError(err).Error("Erro ao executar ação de IA")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao executar ação de IA", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
