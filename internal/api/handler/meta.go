package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/advertising"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/integrating"
	"github.com/QUATTROMKT/info-sistema/pkg/apiErrors"
)

// parseListOptions extrai os filtros comuns das listagens do Meta. Sem
// date_preset a janela padrão é last_30d; um preset desconhecido é erro de
// requisição, nunca repassado para a API remota.
func parseListOptions(r *http.Request) (*domain.ListOptions, bool) {
	query := r.URL.Query()

	datePreset := domain.DatePreset(query.Get("date_preset"))
	if datePreset == "" {
		datePreset = domain.DatePresetLast30d
	}
	if !datePreset.Valid() {
		return nil, false
	}

	return &domain.ListOptions{
		DatePreset: datePreset,
		AccountID:  query.Get("account_id"),
		CampaignID: query.Get("campaign_id"),
		AdSetID:    query.Get("adset_id"),
	}, true
}

func GetCampaigns(service advertising.Inquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, ok := parseListOptions(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "date_preset inválido", nil)
			return
		}

		resp, err := service.ListCampaigns(r.Context(), opts)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar campanhas", nil)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func GetAdSets(service advertising.Inquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, ok := parseListOptions(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "date_preset inválido", nil)
			return
		}

		resp, err := service.ListAdSets(r.Context(), opts)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar conjuntos de anúncios")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar conjuntos de anúncios", nil)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func GetAds(service advertising.Inquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, ok := parseListOptions(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "date_preset inválido", nil)
			return
		}

		resp, err := service.ListAds(r.Context(), opts)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar anúncios")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar anúncios", nil)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func GetAccountInsights(service advertising.Inquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, ok := parseListOptions(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "date_preset inválido", nil)
			return
		}

		resp, err := service.AccountInsights(r.Context(), opts)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar insights das contas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar insights das contas", nil)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func GetSelectableAccounts(service integrating.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.SelectableAccounts()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar contas selecionáveis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
	}
}

func UpdateCampaign(service advertising.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCampaignRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateCampaign(r.Context(), &req); err != nil {
			handleMutationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func UpdateAdSet(service advertising.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateAdSetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateAdSet(r.Context(), &req); err != nil {
			handleMutationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func UpdateAd(service advertising.Mutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateAdRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateAd(r.Context(), &req); err != nil {
			handleMutationError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// handleMutationError sinaliza recusas da Graph API como erro de aplicação:
// corpo {error} com a mensagem remota sem tradução, status 200. O operador
// precisa ver o motivo exato da recusa (orçamento mínimo, status inválido,
// revisão pendente) e o painel trata o campo error, não o status HTTP. O
// envelope de erro fica só para requisição malformada.
func handleMutationError(w http.ResponseWriter, err error) {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		respondJSON(w, http.StatusOK, map[string]string{"error": apiErr.Message})
		return
	}

	if errors.Is(err, advertising.ErrIntegrationNotConfigured) {
		respondJSON(w, http.StatusOK, map[string]string{"error": "Integração do Meta não configurada"})
		return
	}

	logrus.WithError(err).Error("Erro ao atualizar entidade do Meta")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
}
