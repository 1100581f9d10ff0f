package usecase

import "time"

// LeadInput é o registro cru vindo de upload, captura ou CRM.
// Só company_name é obrigatório; o resto tem default.
type LeadInput struct {
	CompanyName     string  `json:"company_name"`
	Email           string  `json:"email,omitempty"`
	JobRole         string  `json:"job_role,omitempty"`
	Role            string  `json:"role,omitempty"` // alias aceito no upload
	QuoteValue      float64 `json:"quote_value"`
	ItemCount       int     `json:"item_count"`
	ConversionDays  int     `json:"conversion_days"`
	PastEngagements int     `json:"past_engagements"`
}

type CreateCampaignInput struct {
	Name          string     `json:"name"`
	CampaignType  string     `json:"campaign_type"`
	TargetSegment string     `json:"target_segment"`
	UseCaseID     string     `json:"use_case_id,omitempty"`
	ThrottleRate  int        `json:"throttle_rate,omitempty"`
	SendTime      *time.Time `json:"send_time,omitempty"`
}

type CreateCampaignOutput struct {
	CampaignID    string     `json:"campaign_id"`
	LeadsTargeted int        `json:"leads_targeted"`
	ThrottleRate  string     `json:"throttle_rate"`
	ScheduledFor  *time.Time `json:"scheduled_for,omitempty"`
}

// SegmentationReport é o resultado agregado de um passe de re-segmentação.
// As transições de segmento são o sinal de upsell/cross-sell.
type SegmentationReport struct {
	Total        int            `json:"total"`
	Updated      int            `json:"updated"`
	Skipped      int            `json:"skipped"`
	Failed       int            `json:"failed"`
	Transitions  map[string]int `json:"transitions"`
	Distribution map[string]int `json:"segment_distribution"`
}

type CRMSyncOutput struct {
	Source        string `json:"source"`
	RecordsQueued int    `json:"records_queued"`
}
