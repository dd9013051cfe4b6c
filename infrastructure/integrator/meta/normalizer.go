package meta

import (
	"strconv"

	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/utils"
)

const purchaseActionType = "purchase"

// NormalizeInsight converte um payload cru de insights no registro
// canônico do painel. O resultado é sempre totalmente preenchido: entrega
// zero vira um registro zerado, nunca nil — nil fica reservado para "a
// busca de insights falhou".
//
// O cpa vem reportado pela API (cost_per_action_type) e é preservado, não
// derivado de spend/purchases: a janela de atribuição remota pode fazer os
// dois divergirem legitimamente.
func NormalizeInsight(raw *metadomain.RawInsight) *domain.InsightRecord {
	if raw == nil {
		return nil
	}

	spend := parseFloat(raw.Spend)
	purchases := int(parseFloat(metadomain.FindAction(raw.Actions, purchaseActionType)))
	revenue := parseFloat(metadomain.FindAction(raw.ActionValues, purchaseActionType))
	costPerPurchase := parseFloat(metadomain.FindAction(raw.CostPerActions, purchaseActionType))

	roas := "0.00"
	if spend > 0 {
		roas = utils.FormatMoney(revenue / spend)
	}

	return &domain.InsightRecord{
		Spend:       utils.FormatMoney(spend),
		Revenue:     utils.FormatMoney(revenue),
		ROAS:        roas,
		Purchases:   purchases,
		CPA:         utils.FormatMoney(costPerPurchase),
		Impressions: parseInt(raw.Impressions),
		Clicks:      parseInt(raw.Clicks),
		CTR:         utils.FormatMoney(parseFloat(raw.CTR)),
		CPC:         utils.FormatMoney(parseFloat(raw.CPC)),
		CPM:         utils.FormatMoney(parseFloat(raw.CPM)),
	}
}

// Campos numéricos ausentes significam zero, não "desconhecido".
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}

func parseInt(s string) int {
	return int(parseFloat(s))
}
