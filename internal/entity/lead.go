package entity

import (
	"context"
	"time"
)

// Enums fechados para os dados de segmentação.
// Adicionar uma categoria nova = mexer aqui e nas tabelas de regras, nada de string solta.

type Industry string

const (
	IndustryTechnology    Industry = "Technology"
	IndustryHealthcare    Industry = "Healthcare"
	IndustryFinance       Industry = "Finance"
	IndustryRetail        Industry = "Retail"
	IndustryManufacturing Industry = "Manufacturing"
	IndustryEducation     Industry = "Education"
	IndustryOther         Industry = "Other"
)

type MaturityLevel string

const (
	MaturityEarlyStage MaturityLevel = "Early Stage"
	MaturityGrowth     MaturityLevel = "Growth"
	MaturityMature     MaturityLevel = "Mature"
	MaturityEnterprise MaturityLevel = "Enterprise"
)

type Segment string

const (
	SegmentHighValueTech        Segment = "High-Value Technology"
	SegmentHealthcareInnovators Segment = "Healthcare Innovators"
	SegmentFinancialEnterprise  Segment = "Financial Enterprise"
	SegmentRetailGrowth         Segment = "Retail Growth"
	SegmentManufacturingDigital Segment = "Manufacturing Digital Transformation"
	SegmentEducationTech        Segment = "Education Technology"
	SegmentGeneral              Segment = "General"
)

type JobRole string

const (
	RoleCTO           JobRole = "Chief Technology Officer"
	RoleCIO           JobRole = "Chief Information Officer"
	RoleCFO           JobRole = "Chief Financial Officer"
	RoleCEO           JobRole = "Chief Executive Officer"
	RoleVPEngineering JobRole = "VP Engineering"
	RoleVPSales       JobRole = "VP Sales"
	RoleVPOperations  JobRole = "VP Operations"
	RoleDirectorIT    JobRole = "Director IT"
	RoleManager       JobRole = "Manager"
	RoleProcurement   JobRole = "Procurement"
	RoleOther         JobRole = "Other"
)

// IsDecisionMaker identifica contatos com poder de compra (C-level e VPs).
func (r JobRole) IsDecisionMaker() bool {
	switch r {
	case RoleCEO, RoleCTO, RoleCIO, RoleCFO, RoleVPEngineering, RoleVPSales, RoleVPOperations:
		return true
	}
	return false
}

// Lead é o registro de prospect. O email é a chave de upsert no banco.
type Lead struct {
	ID                    string        `json:"id"`
	Email                 string        `json:"email"`
	CompanyName           string        `json:"company_name"`
	Industry              Industry      `json:"industry,omitempty"`
	MaturityLevel         MaturityLevel `json:"maturity_level,omitempty"`
	Segment               Segment       `json:"segment,omitempty"`
	JobRole               JobRole       `json:"job_role,omitempty"`
	IsDecisionMaker       bool          `json:"is_decision_maker"`
	QuoteValue            float64       `json:"quote_value"`
	ItemCount             int           `json:"item_count"`
	ConversionDays        int           `json:"conversion_days"`
	PastEngagements       int           `json:"past_engagements"`
	RevenuePotential      float64       `json:"revenue_potential"`
	LeadScore             float64       `json:"lead_score"`
	ConversionProbability float64       `json:"conversion_probability"`
	LastSegmentedAt       *time.Time    `json:"last_segmented_at,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
	FindByEmail(ctx context.Context, email string) (*Lead, error)
	ListAll(ctx context.Context, limit int) ([]Lead, error)
}
