package advertising

import (
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/utils"
)

func summarizeCampaigns(campaigns []*domain.Campaign) *domain.InsightRecord {
	records := make([]*domain.InsightRecord, 0, len(campaigns))
	for _, campaign := range campaigns {
		records = append(records, campaign.Insights)
	}
	return summarize(records)
}

func summarizeAdSets(adSets []*domain.AdSet) *domain.InsightRecord {
	records := make([]*domain.InsightRecord, 0, len(adSets))
	for _, adSet := range adSets {
		records = append(records, adSet.Insights)
	}
	return summarize(records)
}

func summarizeAds(ads []*domain.Ad) *domain.InsightRecord {
	records := make([]*domain.InsightRecord, 0, len(ads))
	for _, ad := range ads {
		records = append(records, ad.Insights)
	}
	return summarize(records)
}

// summarize soma os registros em centavos inteiros e recalcula as métricas
// derivadas a partir dos totais. Médias de roas por entidade distorcem o
// agregado; o roas total é sempre receita total sobre gasto total. Entradas
// nil (falha de busca individual) contribuem zero. Sem nenhum registro
// válido o agregado é nil: "não medido" e "zero" são coisas diferentes no
// painel.
func summarize(records []*domain.InsightRecord) *domain.InsightRecord {
	var (
		spendCents   int64
		revenueCents int64
		purchases    int
		impressions  int
		clicks       int
	)

	counted := 0
	for _, record := range records {
		if record == nil {
			continue
		}
		counted++
		spendCents += utils.ParseMoneyCents(record.Spend)
		revenueCents += utils.ParseMoneyCents(record.Revenue)
		purchases += record.Purchases
		impressions += record.Impressions
		clicks += record.Clicks
	}

	if counted == 0 {
		return nil
	}

	summary := &domain.InsightRecord{
		Spend:       utils.FormatCents(spendCents),
		Revenue:     utils.FormatCents(revenueCents),
		ROAS:        "0.00",
		Purchases:   purchases,
		CPA:         "0.00",
		Impressions: impressions,
		Clicks:      clicks,
		CTR:         "0.00",
		CPC:         "0.00",
		CPM:         "0.00",
	}

	spend := float64(spendCents) / 100
	revenue := float64(revenueCents) / 100

	if spendCents > 0 {
		summary.ROAS = utils.FormatMoney(revenue / spend)
	}

	// O cpa agregado é derivado dos totais (gasto / compras), diferente do
	// cpa por entidade, que vem reportado pela API.
	if purchases > 0 {
		summary.CPA = utils.FormatMoney(spend / float64(purchases))
	}

	if impressions > 0 {
		summary.CTR = utils.FormatMoney(float64(clicks) / float64(impressions) * 100)
		summary.CPM = utils.FormatMoney(spend / float64(impressions) * 1000)
	}

	if clicks > 0 {
		summary.CPC = utils.FormatMoney(spend / float64(clicks))
	}

	return summary
}
