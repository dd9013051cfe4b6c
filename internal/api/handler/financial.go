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

// FinancialSummary acompanha a listagem: totais de entrada, saída e saldo
// calculados no servidor para o painel não somar float no cliente.
type FinancialSummary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

func ListFinancialRecords(repo repository.FinancialRecordRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := repo.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar lançamentos financeiros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos", nil)
			return
		}

		summary := FinancialSummary{}
		for _, record := range records {
			switch record.Type {
			case domain.FinancialIncome:
				summary.TotalIncome += record.Amount
			case domain.FinancialExpense:
				summary.TotalExpense += record.Amount
			}
		}
		summary.Balance = summary.TotalIncome - summary.TotalExpense

		respondJSON(w, http.StatusOK, map[string]any{
			"records": records,
			"summary": summary,
		})
	}
}

func CreateFinancialRecord(repo repository.FinancialRecordRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record domain.FinancialRecord

		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if record.Description == "" || record.Amount <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição e valor positivo são obrigatórios", nil)
			return
		}

		if record.Type != domain.FinancialIncome && record.Type != domain.FinancialExpense {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo deve ser INCOME ou EXPENSE", nil)
			return
		}

		if record.Status == "" {
			record.Status = domain.FinancialPending
		}

		created, err := repo.Create(&record)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar lançamento financeiro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar lançamento", nil)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

func UpdateFinancialRecord(repo repository.FinancialRecordRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var record domain.FinancialRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		record.ID = id

		updated, err := repo.Update(&record)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Lançamento não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao atualizar lançamento financeiro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar lançamento", nil)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteFinancialRecord(repo repository.FinancialRecordRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := repo.Delete(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Lançamento não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao excluir lançamento financeiro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir lançamento", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
