package crm

// LeadRecord é o lead cru já mapeado do CRM para o nosso schema.
type LeadRecord struct {
	ID              string  `json:"id"`
	CompanyName     string  `json:"company_name"`
	JobRole         string  `json:"job_role"`
	Email           string  `json:"email"`
	QuoteValue      float64 `json:"quote_value"`
	ItemCount       int     `json:"item_count"`
	Industry        string  `json:"industry"`
	ConversionDays  int     `json:"conversion_days"`
	PastEngagements int     `json:"past_engagements"`
	Source          string  `json:"source"`
}

// Formato do /services/data query do Salesforce (campos que usamos)
type sfQueryResponse struct {
	TotalSize int        `json:"totalSize"`
	Records   []sfRecord `json:"records"`
}

type sfRecord struct {
	ID                string       `json:"Id"`
	Name              string       `json:"Name"`
	Company           string       `json:"Company"`
	Industry          string       `json:"Industry"`
	AnnualRevenue     float64      `json:"AnnualRevenue"`
	NumberOfEmployees int          `json:"NumberOfEmployees"`
	Title             string       `json:"Title"`
	Email             string       `json:"Email"`
	Tasks             *sfSubquery  `json:"Tasks"`
	Events            *sfSubquery  `json:"Events"`
}

type sfSubquery struct {
	TotalSize int `json:"totalSize"`
}

type sfUpdatePayload struct {
	AIScore     float64 `json:"AI_Score__c"`
	AIUseCase   string  `json:"AI_Recommended_Use_Case__c"`
	Description string  `json:"Description"`
}
