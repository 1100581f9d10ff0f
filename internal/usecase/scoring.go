package usecase

import (
	"github.com/xavierca1/coresales/internal/entity"
)

// NeutralScore é o fallback quando o modelo de scoring está fora do ar.
// Reportado, não retentado.
const NeutralScore = 0.5

// mlContributionCap limita quanto o modelo externo pode mexer no score.
// As regras de negócio mandam; o modelo só dá um empurrão.
const mlContributionCap = 15.0

// HybridScore combina as regras de negócio com a probabilidade do modelo
// externo e devolve um score em [0,1].
//
// Comparações estritas (>): um quote de exatamente 300000 cai na faixa de
// baixo, não na de cima.
func HybridScore(quoteValue float64, itemCount, pastEngagements int, segment entity.Segment, decisionMaker bool, probability float64) float64 {
	var base float64
	switch {
	case quoteValue > 300000:
		base = 50
	case quoteValue > 150000:
		base = 40
	case quoteValue > 75000:
		base = 35
	case quoteValue > 30000:
		base = 25
	default:
		base = 15
	}

	if decisionMaker {
		base += 25
	}

	if segment == entity.SegmentHighValueTech || segment == entity.SegmentFinancialEnterprise {
		base += 10
	}

	if pastEngagements > 10 {
		base += 10
	} else if pastEngagements > 5 {
		base += 5
	}

	if itemCount > 400 {
		base += 5
	}

	// Contribuição do modelo, no máximo 15 pontos
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	ml := probability * 100
	if ml > mlContributionCap {
		ml = mlContributionCap
	}

	total := base + ml
	if total > 100 {
		total = 100
	}

	return total / 100
}
