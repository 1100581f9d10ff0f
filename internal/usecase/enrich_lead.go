package usecase

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/xavierca1/coresales/internal/entity"
)

const defaultConversionDays = 45

// EnrichLeadUseCase roda o pipeline de segmentação em cima de um lead:
// indústria, maturidade, segmento, cargo, decision-maker, potencial de
// receita e score híbrido. Muta o próprio registro.
type EnrichLeadUseCase struct {
	Scoring ScoringGateway
}

func NewEnrichLeadUseCase(scoring ScoringGateway) *EnrichLeadUseCase {
	return &EnrichLeadUseCase{Scoring: scoring}
}

// Execute nunca falha por campo opcional ausente: tudo tem default.
func (uc *EnrichLeadUseCase) Execute(ctx context.Context, lead *entity.Lead) error {
	if lead.CompanyName == "" {
		lead.CompanyName = "Unknown"
	}
	if lead.ConversionDays <= 0 {
		lead.ConversionDays = defaultConversionDays
	}

	// Histórico de engajamento: simula quando o CRM não informa
	if lead.PastEngagements <= 0 {
		key := lead.Email
		if key == "" {
			key = lead.CompanyName
		}
		lead.PastEngagements = defaultPastEngagements(key)
	}

	lead.JobRole = ParseJobRole(string(lead.JobRole))
	lead.IsDecisionMaker = lead.JobRole.IsDecisionMaker()

	lead.Industry = DetermineIndustry(lead.CompanyName)
	lead.MaturityLevel = DetermineMaturity(lead.QuoteValue, lead.ItemCount)
	lead.Segment = AssignSegment(lead.Industry, lead.MaturityLevel)

	// Potencial de receita: x1.5 para Enterprise, x1.2 para o resto,
	// mais x1.3 se o contato decide compra
	potential := lead.QuoteValue * 1.2
	if lead.MaturityLevel == entity.MaturityEnterprise {
		potential = lead.QuoteValue * 1.5
	}
	if lead.IsDecisionMaker {
		potential *= 1.3
	}
	lead.RevenuePotential = math.Round(potential*100) / 100

	probability, err := uc.Scoring.PredictProbability(ctx, lead.QuoteValue, lead.ItemCount, lead.ConversionDays)
	if err != nil {
		// Modelo fora do ar: score neutro, sem retry
		log.Printf("⚠️ Modelo de scoring indisponível para %s: %v", lead.CompanyName, err)
		lead.LeadScore = NeutralScore
		lead.ConversionProbability = NeutralScore
	} else {
		score := HybridScore(lead.QuoteValue, lead.ItemCount, lead.PastEngagements, lead.Segment, lead.IsDecisionMaker, probability)
		lead.LeadScore = score
		lead.ConversionProbability = score
	}

	now := time.Now()
	lead.LastSegmentedAt = &now

	return nil
}

// LeadFromInput converte o registro cru em entidade, sintetizando email
// quando o upload não traz um (mesma convenção do ingest por CSV).
func LeadFromInput(in LeadInput) *entity.Lead {
	role := in.JobRole
	if role == "" {
		role = in.Role
	}

	email := in.Email
	if email == "" && in.CompanyName != "" {
		clean := strings.ToLower(strings.ReplaceAll(in.CompanyName, " ", ""))
		email = "contact@" + clean + ".com"
	}

	return &entity.Lead{
		Email:           email,
		CompanyName:     in.CompanyName,
		JobRole:         entity.JobRole(role),
		QuoteValue:      in.QuoteValue,
		ItemCount:       in.ItemCount,
		ConversionDays:  in.ConversionDays,
		PastEngagements: in.PastEngagements,
	}
}
