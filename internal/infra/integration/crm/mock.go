package crm

import (
	"context"
	"log"
)

// MockClient simula o CRM para rodar sem credenciais.
// Mesma estrutura de saída do SalesforceClient.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) FetchLeads(ctx context.Context, limit int) ([]LeadRecord, error) {
	leads := []LeadRecord{
		{
			ID:              "LEAD-001",
			CompanyName:     "Acme Manufacturing Corp",
			Industry:        "Manufacturing",
			JobRole:         "Chief Technology Officer",
			QuoteValue:      120000,
			ItemCount:       500,
			ConversionDays:  45,
			PastEngagements: 3,
			Email:           "cto@acme-manufacturing.com",
			Source:          "Mock",
		},
		{
			ID:              "LEAD-002",
			CompanyName:     "TechStart Cloud Solutions",
			Industry:        "Technology",
			JobRole:         "VP Engineering",
			QuoteValue:      45000,
			ItemCount:       25,
			ConversionDays:  15,
			PastEngagements: 7,
			Email:           "vp@techstart.io",
			Source:          "Mock",
		},
		{
			ID:              "LEAD-003",
			CompanyName:     "HealthCare Innovators Inc",
			Industry:        "Healthcare",
			JobRole:         "Chief Information Officer",
			QuoteValue:      85000,
			ItemCount:       150,
			ConversionDays:  30,
			PastEngagements: 2,
			Email:           "cio@healthcare-innovators.com",
			Source:          "Mock",
		},
		{
			ID:              "LEAD-004",
			CompanyName:     "Retail Express",
			Industry:        "Retail",
			JobRole:         "Manager",
			QuoteValue:      15000,
			ItemCount:       30,
			ConversionDays:  20,
			PastEngagements: 1,
			Email:           "manager@retailexpress.com",
			Source:          "Mock",
		},
	}

	if limit > 0 && limit < len(leads) {
		leads = leads[:limit]
	}
	return leads, nil
}

func (c *MockClient) UpdateLeadAIData(ctx context.Context, leadID string, leadScore float64, useCaseTitle string) error {
	log.Printf("✅ [MOCK] Lead %s atualizado: score=%.2f use_case=%q", leadID, leadScore, useCaseTitle)
	return nil
}
