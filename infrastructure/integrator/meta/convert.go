package meta

import (
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/utils"
)

// Conversores das entidades cruas para as entidades do painel. Orçamentos
// saem da Graph API em centavos inteiros e nunca atravessam a fronteira da
// nossa API nesse formato: aqui eles viram unidades monetárias.

func CampaignFromRaw(raw *metadomain.RawCampaign) *domain.Campaign {
	return &domain.Campaign{
		ID:             raw.ID,
		Name:           raw.Name,
		Status:         raw.Status,
		Objective:      raw.Objective,
		DailyBudget:    utils.MinorUnitsToMoney(raw.DailyBudget),
		LifetimeBudget: utils.MinorUnitsToMoney(raw.LifetimeBudget),
		CreatedTime:    raw.CreatedTime,
		UpdatedTime:    raw.UpdatedTime,
	}
}

func AdSetFromRaw(raw *metadomain.RawAdSet) *domain.AdSet {
	return &domain.AdSet{
		ID:               raw.ID,
		Name:             raw.Name,
		Status:           raw.Status,
		CampaignID:       raw.CampaignID,
		OptimizationGoal: raw.OptimizationGoal,
		BidStrategy:      raw.BidStrategy,
		DailyBudget:      utils.MinorUnitsToMoney(raw.DailyBudget),
		LifetimeBudget:   utils.MinorUnitsToMoney(raw.LifetimeBudget),
	}
}

func AdFromRaw(raw *metadomain.RawAd) *domain.Ad {
	ad := &domain.Ad{
		ID:         raw.ID,
		Name:       raw.Name,
		Status:     raw.Status,
		AdSetID:    raw.AdSetID,
		CampaignID: raw.CampaignID,
	}

	if raw.Creative != nil {
		ad.Creative = &domain.AdCreative{
			ID:                     raw.Creative.ID,
			ThumbnailURL:           raw.Creative.ThumbnailURL,
			EffectiveObjectStoryID: raw.Creative.EffectiveObjectStoryID,
		}
	}

	return ad
}
