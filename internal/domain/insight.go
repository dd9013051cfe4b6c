package domain

// DatePreset é o intervalo de datas aceito pela API do Meta. O valor é
// repassado sem tradução local, a API remota resolve o período.
type DatePreset string

const (
	DatePresetToday     DatePreset = "today"
	DatePresetYesterday DatePreset = "yesterday"
	DatePresetLast7d    DatePreset = "last_7d"
	DatePresetLast14d   DatePreset = "last_14d"
	DatePresetLast30d   DatePreset = "last_30d"
	DatePresetThisMonth DatePreset = "this_month"
	DatePresetLastMonth DatePreset = "last_month"
)

var validDatePresets = map[DatePreset]struct{}{
	DatePresetToday:     {},
	DatePresetYesterday: {},
	DatePresetLast7d:    {},
	DatePresetLast14d:   {},
	DatePresetLast30d:   {},
	DatePresetThisMonth: {},
	DatePresetLastMonth: {},
}

func (d DatePreset) Valid() bool {
	_, ok := validDatePresets[d]
	return ok
}

// InsightRecord é o registro canônico de métricas de uma entidade de anúncio.
// Valores monetários são strings com duas casas decimais. Um registro nulo
// significa "falha ao buscar insights", nunca "sem entrega" — entrega zero
// produz um registro totalmente zerado.
type InsightRecord struct {
	Spend       string `json:"spend"`
	Revenue     string `json:"revenue"`
	ROAS        string `json:"roas"`
	Purchases   int    `json:"purchases"`
	CPA         string `json:"cpa"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	CPM         string `json:"cpm"`
}

// Campaign é uma entidade transitória da API do Meta. Não é persistida:
// o sistema remoto é a fonte de verdade e pode renomear ou remover
// campanhas fora do nosso controle.
type Campaign struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Status         string         `json:"status"`
	Objective      string         `json:"objective,omitempty"`
	DailyBudget    *float64       `json:"daily_budget,omitempty"`
	LifetimeBudget *float64       `json:"lifetime_budget,omitempty"`
	CreatedTime    string         `json:"created_time,omitempty"`
	UpdatedTime    string         `json:"updated_time,omitempty"`
	Insights       *InsightRecord `json:"insights"`
}

type AdSet struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Status           string         `json:"status"`
	CampaignID       string         `json:"campaign_id,omitempty"`
	OptimizationGoal string         `json:"optimization_goal,omitempty"`
	BidStrategy      string         `json:"bid_strategy,omitempty"`
	DailyBudget      *float64       `json:"daily_budget,omitempty"`
	LifetimeBudget   *float64       `json:"lifetime_budget,omitempty"`
	Insights         *InsightRecord `json:"insights"`
}

type AdCreative struct {
	ID                     string `json:"id,omitempty"`
	ThumbnailURL           string `json:"thumbnail_url,omitempty"`
	EffectiveObjectStoryID string `json:"effective_object_story_id,omitempty"`
}

type Ad struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Status     string         `json:"status"`
	AdSetID    string         `json:"adset_id,omitempty"`
	CampaignID string         `json:"campaign_id,omitempty"`
	Creative   *AdCreative    `json:"creative,omitempty"`
	Insights   *InsightRecord `json:"insights"`
}

// ListOptions são os filtros aceitos pelas listagens de entidades do Meta.
type ListOptions struct {
	DatePreset DatePreset
	AccountID  string
	CampaignID string
	AdSetID    string
}

type CampaignListResponse struct {
	Connected bool           `json:"connected"`
	Error     string         `json:"error,omitempty"`
	Campaigns []*Campaign    `json:"campaigns"`
	Total     int            `json:"total"`
	Summary   *InsightRecord `json:"summary,omitempty"`
}

type AdSetListResponse struct {
	Connected bool           `json:"connected"`
	Error     string         `json:"error,omitempty"`
	AdSets    []*AdSet       `json:"adSets"`
	Total     int            `json:"total"`
	Summary   *InsightRecord `json:"summary,omitempty"`
}

type AdListResponse struct {
	Connected bool           `json:"connected"`
	Error     string         `json:"error,omitempty"`
	Ads       []*Ad          `json:"ads"`
	Total     int            `json:"total"`
	Summary   *InsightRecord `json:"summary,omitempty"`
}

type AccountInsightsResponse struct {
	Connected bool           `json:"connected"`
	Error     string         `json:"error,omitempty"`
	Insights  *InsightRecord `json:"insights"`
}

// UpdateCampaignRequest aplica mudanças em uma única campanha remota.
// Orçamentos chegam em unidades monetárias (reais), a conversão para
// centavos acontece apenas na borda com a API do Meta.
type UpdateCampaignRequest struct {
	CampaignID     string   `json:"campaignId"`
	Status         *string  `json:"status,omitempty"`
	Name           *string  `json:"name,omitempty"`
	DailyBudget    *float64 `json:"dailyBudget,omitempty"`
	LifetimeBudget *float64 `json:"lifetimeBudget,omitempty"`
}

type UpdateAdSetRequest struct {
	AdSetID     string   `json:"adSetId"`
	Status      *string  `json:"status,omitempty"`
	DailyBudget *float64 `json:"dailyBudget,omitempty"`
}

type UpdateAdRequest struct {
	AdID   string  `json:"adId"`
	Status *string `json:"status,omitempty"`
}
