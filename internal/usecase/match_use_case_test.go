package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/infra/catalog"
)

// TestMatchUseCaseBySegment - O primeiro passe (segmento) ganha do segundo
// (indústria), mesmo quando a indústria apontaria outra história
func TestMatchUseCaseBySegment(t *testing.T) {
	matched := MatchUseCase(catalog.UseCases(), entity.IndustryTechnology, entity.SegmentHighValueTech)
	assert.Equal(t, "UC006", matched.ID)

	matched = MatchUseCase(catalog.UseCases(), entity.IndustryHealthcare, entity.SegmentHealthcareInnovators)
	assert.Equal(t, "UC003", matched.ID)

	matched = MatchUseCase(catalog.UseCases(), entity.IndustryFinance, entity.SegmentFinancialEnterprise)
	assert.Equal(t, "UC002", matched.ID)

	// Segmento General bate no UC001, que lista General como relevante —
	// a indústria (Technology) nem chega a ser consultada
	matched = MatchUseCase(catalog.UseCases(), entity.IndustryTechnology, entity.SegmentGeneral)
	assert.Equal(t, "UC001", matched.ID)
}

// TestMatchUseCaseByIndustry - Sem match de segmento, cai no passe de indústria
func TestMatchUseCaseByIndustry(t *testing.T) {
	shortCatalog := []entity.UseCase{
		{ID: "A", Industry: entity.IndustryFinance, RelevantSegments: []entity.Segment{entity.SegmentFinancialEnterprise}},
		{ID: "B", Industry: entity.IndustryRetail, RelevantSegments: []entity.Segment{entity.SegmentRetailGrowth}},
	}

	matched := MatchUseCase(shortCatalog, entity.IndustryRetail, entity.SegmentGeneral)
	assert.Equal(t, "B", matched.ID)
}

// TestMatchUseCaseFallback - Sem match nenhum, devolve a última história
func TestMatchUseCaseFallback(t *testing.T) {
	matched := MatchUseCase(catalog.UseCases(), entity.IndustryOther, entity.Segment("Nonexistent"))
	assert.Equal(t, "UC006", matched.ID)
}

// TestMatchUseCaseEmptyCatalog - Catálogo vazio devolve o zero value em vez
// de estourar no fallback
func TestMatchUseCaseEmptyCatalog(t *testing.T) {
	matched := MatchUseCase(nil, entity.IndustryTechnology, entity.SegmentHighValueTech)
	assert.Equal(t, entity.UseCase{}, matched)

	matched = MatchUseCase([]entity.UseCase{}, entity.IndustryOther, entity.SegmentGeneral)
	assert.Empty(t, matched.ID)
}

// TestFindUseCaseByID
func TestFindUseCaseByID(t *testing.T) {
	found := FindUseCaseByID(catalog.UseCases(), "UC004")
	assert.NotNil(t, found)
	assert.Equal(t, entity.IndustryRetail, found.Industry)

	assert.Nil(t, FindUseCaseByID(catalog.UseCases(), "UC999"))
	assert.Nil(t, FindUseCaseByID(catalog.UseCases(), ""))
}
