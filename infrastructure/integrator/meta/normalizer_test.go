package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/domain"
)

func TestNormalizeInsight(t *testing.T) {
	t.Run("payload completo com compras", func(t *testing.T) {
		raw := &metadomain.RawInsight{
			Spend:       "250.50",
			Impressions: "10000",
			Clicks:      "320",
			CPC:         "0.78",
			CPM:         "25.05",
			CTR:         "3.2",
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "320"},
				{ActionType: "purchase", Value: "12"},
			},
			ActionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "1202.40"},
			},
			CostPerActions: []metadomain.Action{
				{ActionType: "purchase", Value: "20.88"},
			},
		}

		record := NormalizeInsight(raw)

		assert.Equal(t, "250.50", record.Spend)
		assert.Equal(t, "1202.40", record.Revenue)
		assert.Equal(t, "4.80", record.ROAS)
		assert.Equal(t, 12, record.Purchases)
		assert.Equal(t, 10000, record.Impressions)
		assert.Equal(t, 320, record.Clicks)
		assert.Equal(t, "3.20", record.CTR)
		assert.Equal(t, "0.78", record.CPC)
		assert.Equal(t, "25.05", record.CPM)
	})

	t.Run("cpa preservado da API, não derivado de spend/purchases", func(t *testing.T) {
		// A janela de atribuição remota pode fazer cost_per_action_type
		// divergir de spend/purchases. O valor reportado vence.
		raw := &metadomain.RawInsight{
			Spend: "100.00",
			Actions: []metadomain.Action{
				{ActionType: "purchase", Value: "4"},
			},
			CostPerActions: []metadomain.Action{
				{ActionType: "purchase", Value: "27.35"},
			},
		}

		record := NormalizeInsight(raw)

		assert.Equal(t, "27.35", record.CPA)
		assert.NotEqual(t, "25.00", record.CPA)
	})

	t.Run("gasto zero nunca divide: roas fica 0.00", func(t *testing.T) {
		raw := &metadomain.RawInsight{
			Spend: "0",
			ActionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "50.00"},
			},
		}

		record := NormalizeInsight(raw)

		assert.Equal(t, "0.00", record.ROAS)
	})

	t.Run("entrega zero vira registro zerado, não nil", func(t *testing.T) {
		record := NormalizeInsight(&metadomain.RawInsight{})

		assert.NotNil(t, record)
		assert.Equal(t, "0.00", record.Spend)
		assert.Equal(t, "0.00", record.Revenue)
		assert.Equal(t, "0.00", record.ROAS)
		assert.Equal(t, 0, record.Purchases)
		assert.Equal(t, 0, record.Impressions)
	})

	t.Run("nil significa falha de busca e continua nil", func(t *testing.T) {
		assert.Nil(t, NormalizeInsight(nil))
	})

	t.Run("ação de compra ausente significa zero conversões", func(t *testing.T) {
		raw := &metadomain.RawInsight{
			Spend: "75.00",
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "100"},
			},
		}

		record := NormalizeInsight(raw)

		assert.Equal(t, 0, record.Purchases)
		assert.Equal(t, "0.00", record.Revenue)
		assert.Equal(t, "0.00", record.CPA)
	})
}

func TestFindAction(t *testing.T) {
	actions := []metadomain.Action{
		{ActionType: "link_click", Value: "55"},
		{ActionType: "purchase", Value: "7"},
	}

	assert.Equal(t, "7", metadomain.FindAction(actions, "purchase"))
	assert.Equal(t, "", metadomain.FindAction(actions, "lead"))
	assert.Equal(t, "", metadomain.FindAction(nil, "purchase"))
}
