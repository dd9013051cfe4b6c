package metadomain

// Tipos crus das respostas da Graph API. Orçamentos chegam como strings de
// centavos (ex.: "2550" = R$ 25,50) e métricas numéricas como strings.

type RawCampaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
	CreatedTime    string `json:"created_time"`
	UpdatedTime    string `json:"updated_time"`
}

type RawAdSet struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	CampaignID       string `json:"campaign_id"`
	OptimizationGoal string `json:"optimization_goal"`
	BidStrategy      string `json:"bid_strategy"`
	DailyBudget      string `json:"daily_budget"`
	LifetimeBudget   string `json:"lifetime_budget"`
}

type RawCreative struct {
	ID                     string `json:"id"`
	ThumbnailURL           string `json:"thumbnail_url"`
	EffectiveObjectStoryID string `json:"effective_object_story_id"`
}

type RawAd struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Status     string       `json:"status"`
	AdSetID    string       `json:"adset_id"`
	CampaignID string       `json:"campaign_id"`
	Creative   *RawCreative `json:"creative"`
}

// Action é um par frouxamente tipado {action_type, value} usado pela API
// para conversões, valores de conversão e custo por ação.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// RawInsight é o payload de insights de uma entidade. Um RawInsight vazio
// representa entrega zero (a API devolve data:[] nesse caso).
type RawInsight struct {
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Clicks         string   `json:"clicks"`
	CPC            string   `json:"cpc"`
	CPM            string   `json:"cpm"`
	CTR            string   `json:"ctr"`
	Actions        []Action `json:"actions"`
	ActionValues   []Action `json:"action_values"`
	CostPerActions []Action `json:"cost_per_action_type"`
}

// FindAction devolve o value do action_type pedido, ou "" quando ausente.
// Ausência significa zero conversões, não "desconhecido".
func FindAction(actions []Action, actionType string) string {
	for i := range actions {
		if actions[i].ActionType == actionType {
			return actions[i].Value
		}
	}
	return ""
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type RawArchiveAd struct {
	ID                       string   `json:"id"`
	AdCreativeBodies         []string `json:"ad_creative_bodies"`
	AdCreativeLinkCaptions   []string `json:"ad_creative_link_captions"`
	AdCreativeLinkTitles     []string `json:"ad_creative_link_titles"`
	AdCreativeLinkDescs      []string `json:"ad_creative_link_descriptions"`
	AdDeliveryStartTime      string   `json:"ad_delivery_start_time"`
	AdDeliveryStopTime       string   `json:"ad_delivery_stop_time"`
	Bylines                  string   `json:"bylines"`
	PublisherPlatforms       []string `json:"publisher_platforms"`
	PageID                   string   `json:"page_id"`
	PageName                 string   `json:"page_name"`
	AdSnapshotURL            string   `json:"ad_snapshot_url"`
	EstimatedAudienceSize    any      `json:"estimated_audience_size"`
	Languages                []string `json:"languages"`
	Impressions              any      `json:"impressions"`
	Spend                    any      `json:"spend"`
}

type ArchivePage struct {
	Ads   []RawArchiveAd
	After string
}
