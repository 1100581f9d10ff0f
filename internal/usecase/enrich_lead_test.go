package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/coresales/internal/entity"
)

// MockScoringGateway
type MockScoringGateway struct {
	mock.Mock
}

func (m *MockScoringGateway) PredictProbability(ctx context.Context, quoteValue float64, itemCount, conversionDays int) (float64, error) {
	args := m.Called(ctx, quoteValue, itemCount, conversionDays)
	return args.Get(0).(float64), args.Error(1)
}

// TestEnrichLeadFullPipeline - Pipeline completo com o lead da TechStart
func TestEnrichLeadFullPipeline(t *testing.T) {
	ctx := context.Background()

	mockScoring := new(MockScoringGateway)
	mockScoring.On("PredictProbability", ctx, 45000.0, 25, 15).Return(0.10, nil)

	uc := NewEnrichLeadUseCase(mockScoring)

	lead := &entity.Lead{
		Email:           "vp@techstart.io",
		CompanyName:     "TechStart Cloud Solutions",
		JobRole:         "VP Engineering",
		QuoteValue:      45000,
		ItemCount:       25,
		ConversionDays:  15,
		PastEngagements: 7,
	}

	err := uc.Execute(ctx, lead)

	assert.NoError(t, err)
	assert.Equal(t, entity.IndustryTechnology, lead.Industry)
	assert.Equal(t, entity.MaturityMature, lead.MaturityLevel)
	assert.Equal(t, entity.SegmentHighValueTech, lead.Segment)
	assert.Equal(t, entity.RoleVPEngineering, lead.JobRole)
	assert.True(t, lead.IsDecisionMaker)

	// 45000 x1.2 (não-Enterprise) x1.3 (decision maker) = 70200
	assert.InDelta(t, 70200.0, lead.RevenuePotential, 0.01)

	// 25 + 25 + 10 + 5 + 10 = 75
	assert.InDelta(t, 0.75, lead.LeadScore, 0.0001)
	assert.InDelta(t, 0.75, lead.ConversionProbability, 0.0001)

	assert.NotNil(t, lead.LastSegmentedAt)
	mockScoring.AssertCalled(t, "PredictProbability", ctx, 45000.0, 25, 15)
}

// TestEnrichLeadEnterpriseRevenuePotential - Enterprise usa o multiplicador 1.5
func TestEnrichLeadEnterpriseRevenuePotential(t *testing.T) {
	ctx := context.Background()

	mockScoring := new(MockScoringGateway)
	mockScoring.On("PredictProbability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0.2, nil)

	uc := NewEnrichLeadUseCase(mockScoring)

	lead := &entity.Lead{
		Email:           "cto@cyberdyne.com",
		CompanyName:     "Cyberdyne Systems",
		JobRole:         "Manager", // não decide compra
		QuoteValue:      120000,
		ItemCount:       500,
		ConversionDays:  45,
		PastEngagements: 3,
	}

	err := uc.Execute(ctx, lead)

	assert.NoError(t, err)
	assert.Equal(t, entity.MaturityEnterprise, lead.MaturityLevel)
	assert.False(t, lead.IsDecisionMaker)
	assert.InDelta(t, 180000.0, lead.RevenuePotential, 0.01) // 120000 x1.5
}

// TestEnrichLeadScoringUnavailable - Modelo fora do ar: score neutro, sem erro
func TestEnrichLeadScoringUnavailable(t *testing.T) {
	ctx := context.Background()

	mockScoring := new(MockScoringGateway)
	mockScoring.On("PredictProbability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0.0, errors.New("connection refused"))

	uc := NewEnrichLeadUseCase(mockScoring)

	lead := &entity.Lead{
		Email:       "vp@techstart.io",
		CompanyName: "TechStart Cloud Solutions",
		QuoteValue:  45000,
		ItemCount:   25,
	}

	err := uc.Execute(ctx, lead)

	assert.NoError(t, err) // indisponibilidade não vira erro do pipeline
	assert.InDelta(t, NeutralScore, lead.LeadScore, 0.0001)
	assert.InDelta(t, NeutralScore, lead.ConversionProbability, 0.0001)

	// A segmentação roda normal mesmo sem o modelo
	assert.Equal(t, entity.IndustryTechnology, lead.Industry)
	assert.NotNil(t, lead.LastSegmentedAt)
}

// TestEnrichLeadDefaults - Campo opcional ausente ganha default, nunca erro
func TestEnrichLeadDefaults(t *testing.T) {
	ctx := context.Background()

	mockScoring := new(MockScoringGateway)
	mockScoring.On("PredictProbability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0.2, nil)

	uc := NewEnrichLeadUseCase(mockScoring)

	lead := &entity.Lead{}
	err := uc.Execute(ctx, lead)

	assert.NoError(t, err)
	assert.Equal(t, "Unknown", lead.CompanyName)
	assert.Equal(t, 45, lead.ConversionDays)
	assert.GreaterOrEqual(t, lead.PastEngagements, 0)
	assert.LessOrEqual(t, lead.PastEngagements, 5)
	assert.Equal(t, entity.RoleOther, lead.JobRole)
}

// TestEnrichLeadIdempotent - Rodar o pipeline duas vezes no mesmo lead não
// muda o resultado (os fallbacks são determinísticos)
func TestEnrichLeadIdempotent(t *testing.T) {
	ctx := context.Background()

	mockScoring := new(MockScoringGateway)
	mockScoring.On("PredictProbability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0.3, nil)

	uc := NewEnrichLeadUseCase(mockScoring)

	lead := &entity.Lead{
		Email:       "contact@zebrapartners.com",
		CompanyName: "Zebra Partners",
		QuoteValue:  8000,
	}

	assert.NoError(t, uc.Execute(ctx, lead))
	firstIndustry := lead.Industry
	firstEngagements := lead.PastEngagements
	firstScore := lead.LeadScore

	assert.NoError(t, uc.Execute(ctx, lead))
	assert.Equal(t, firstIndustry, lead.Industry)
	assert.Equal(t, firstEngagements, lead.PastEngagements)
	assert.InDelta(t, firstScore, lead.LeadScore, 0.0001)
}

// TestLeadFromInput - Conversão do registro cru, com síntese de email
func TestLeadFromInput(t *testing.T) {
	// Sem email: sintetiza a partir do nome da empresa
	lead := LeadFromInput(LeadInput{CompanyName: "Acme Corp", JobRole: "CTO"})
	assert.Equal(t, "contact@acmecorp.com", lead.Email)
	assert.Equal(t, entity.JobRole("CTO"), lead.JobRole)

	// Com email: mantém o informado
	lead = LeadFromInput(LeadInput{CompanyName: "Acme Corp", Email: "joao@acme.com"})
	assert.Equal(t, "joao@acme.com", lead.Email)

	// O alias "role" vale quando "job_role" está vazio
	lead = LeadFromInput(LeadInput{CompanyName: "Acme Corp", Role: "Manager"})
	assert.Equal(t, entity.JobRole("Manager"), lead.JobRole)
}
