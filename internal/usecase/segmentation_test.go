package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/coresales/internal/entity"
)

// TestDetermineIndustryKeywords - Classificação por keyword no nome da empresa
func TestDetermineIndustryKeywords(t *testing.T) {
	cases := []struct {
		company  string
		expected entity.Industry
	}{
		{"TechStart Cloud Solutions", entity.IndustryTechnology},
		{"CYBERDYNE LABS", entity.IndustryTechnology}, // case-insensitive
		{"MediCorp Pharma", entity.IndustryHealthcare},
		{"First National Bank", entity.IndustryFinance},
		{"Retail Express", entity.IndustryRetail},
		{"BuildRight Construction", entity.IndustryManufacturing},
		{"State University", entity.IndustryEducation},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, DetermineIndustry(c.company), "empresa: %s", c.company)
	}
}

// TestDetermineIndustryFallbackDeterministic - Sem keyword, o chute tem que
// ser sempre o mesmo para o mesmo nome (re-segmentar não pode mudar o lead)
func TestDetermineIndustryFallbackDeterministic(t *testing.T) {
	first := DetermineIndustry("Zebra Partners")

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetermineIndustry("Zebra Partners"))
	}

	assert.Contains(t, []entity.Industry{
		entity.IndustryTechnology,
		entity.IndustryManufacturing,
		entity.IndustryFinance,
		entity.IndustryOther,
	}, first)
}

// TestDetermineMaturityBoundaries - Os limiares são estritos (>)
func TestDetermineMaturityBoundaries(t *testing.T) {
	cases := []struct {
		quoteValue float64
		itemCount  int
		expected   entity.MaturityLevel
	}{
		{50001, 0, entity.MaturityEnterprise},
		{0, 101, entity.MaturityEnterprise},
		{50000, 0, entity.MaturityMature}, // exatamente 50000 não é Enterprise
		{10001, 0, entity.MaturityMature},
		{0, 21, entity.MaturityMature},
		{10000, 0, entity.MaturityGrowth}, // exatamente 10000 não é Mature
		{5001, 0, entity.MaturityGrowth},
		{5000, 0, entity.MaturityEarlyStage},
		{0, 0, entity.MaturityEarlyStage},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, DetermineMaturity(c.quoteValue, c.itemCount),
			"quote=%v items=%d", c.quoteValue, c.itemCount)
	}
}

// TestAssignSegmentTable - Tabela completa (indústria x maturidade)
func TestAssignSegmentTable(t *testing.T) {
	allMaturities := []entity.MaturityLevel{
		entity.MaturityEarlyStage,
		entity.MaturityGrowth,
		entity.MaturityMature,
		entity.MaturityEnterprise,
	}

	// Technology: só Mature/Enterprise viram High-Value
	assert.Equal(t, entity.SegmentHighValueTech, AssignSegment(entity.IndustryTechnology, entity.MaturityMature))
	assert.Equal(t, entity.SegmentHighValueTech, AssignSegment(entity.IndustryTechnology, entity.MaturityEnterprise))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryTechnology, entity.MaturityEarlyStage))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryTechnology, entity.MaturityGrowth))

	// Healthcare, Manufacturing e Education entram pelo setor, qualquer porte
	for _, m := range allMaturities {
		assert.Equal(t, entity.SegmentHealthcareInnovators, AssignSegment(entity.IndustryHealthcare, m))
		assert.Equal(t, entity.SegmentManufacturingDigital, AssignSegment(entity.IndustryManufacturing, m))
		assert.Equal(t, entity.SegmentEducationTech, AssignSegment(entity.IndustryEducation, m))
	}

	// Finance: só Enterprise
	assert.Equal(t, entity.SegmentFinancialEnterprise, AssignSegment(entity.IndustryFinance, entity.MaturityEnterprise))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryFinance, entity.MaturityMature))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryFinance, entity.MaturityGrowth))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryFinance, entity.MaturityEarlyStage))

	// Retail: só Growth
	assert.Equal(t, entity.SegmentRetailGrowth, AssignSegment(entity.IndustryRetail, entity.MaturityGrowth))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryRetail, entity.MaturityEnterprise))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryRetail, entity.MaturityMature))
	assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryRetail, entity.MaturityEarlyStage))

	// Other cai no General sempre
	for _, m := range allMaturities {
		assert.Equal(t, entity.SegmentGeneral, AssignSegment(entity.IndustryOther, m))
	}
}

// TestParseJobRole - Normalização de cargo em texto livre
func TestParseJobRole(t *testing.T) {
	cases := []struct {
		raw      string
		expected entity.JobRole
	}{
		{"CTO", entity.RoleCTO},
		{"Chief Technology Officer", entity.RoleCTO},
		{"Chief Executive Officer", entity.RoleCEO},
		{"VP of Engineering", entity.RoleVPEngineering},
		{"vp sales", entity.RoleVPSales},
		{"Director of IT", entity.RoleDirectorIT},
		{"IT Director", entity.RoleDirectorIT},
		{"Director of Marketing", entity.RoleOther}, // "director" sozinho não é CTO
		{"Sales Manager", entity.RoleManager},
		{"Procurement Lead", entity.RoleProcurement},
		{"Intern", entity.RoleOther},
		{"", entity.RoleOther},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ParseJobRole(c.raw), "cargo: %q", c.raw)
	}
}

// TestParseJobRoleCanonicalRoundTrip - O valor canônico do enum re-parseia
// para si mesmo (o pipeline grava o enum de volta no próprio campo)
func TestParseJobRoleCanonicalRoundTrip(t *testing.T) {
	roles := []entity.JobRole{
		entity.RoleCTO, entity.RoleCIO, entity.RoleCFO, entity.RoleCEO,
		entity.RoleVPEngineering, entity.RoleVPSales, entity.RoleVPOperations,
		entity.RoleDirectorIT, entity.RoleManager, entity.RoleProcurement,
		entity.RoleOther,
	}

	for _, role := range roles {
		assert.Equal(t, role, ParseJobRole(string(role)))
	}
}

// TestIsDecisionMaker - C-level e VPs decidem compra; o resto não
func TestIsDecisionMaker(t *testing.T) {
	decisionMakers := []entity.JobRole{
		entity.RoleCEO, entity.RoleCTO, entity.RoleCIO, entity.RoleCFO,
		entity.RoleVPEngineering, entity.RoleVPSales, entity.RoleVPOperations,
	}
	for _, role := range decisionMakers {
		assert.True(t, role.IsDecisionMaker(), "cargo: %s", role)
	}

	others := []entity.JobRole{
		entity.RoleDirectorIT, entity.RoleManager, entity.RoleProcurement, entity.RoleOther,
	}
	for _, role := range others {
		assert.False(t, role.IsDecisionMaker(), "cargo: %s", role)
	}
}

// TestDefaultPastEngagementsDeterministic - Mesmo lead, mesmo histórico simulado
func TestDefaultPastEngagementsDeterministic(t *testing.T) {
	first := defaultPastEngagements("vp@techstart.io")

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, defaultPastEngagements("vp@techstart.io"))
	}

	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, 5)
}
