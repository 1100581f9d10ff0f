package usecase

import (
	"hash/fnv"
	"strings"

	"github.com/xavierca1/coresales/internal/entity"
)

// Regras de classificação de leads. Tudo aqui é tabela fixa avaliada de cima
// para baixo, primeira regra que bater ganha.

var industryKeywords = []struct {
	industry entity.Industry
	keywords []string
}{
	{entity.IndustryTechnology, []string{"tech", "soft", "data", "cloud", "ai", "cyber", "sys"}},
	{entity.IndustryHealthcare, []string{"health", "med", "pharma", "care", "bio"}},
	{entity.IndustryFinance, []string{"bank", "fin", "capital", "invest", "insur"}},
	{entity.IndustryRetail, []string{"shop", "retail", "store", "market"}},
	{entity.IndustryManufacturing, []string{"mfg", "ind", "eng", "construct", "build"}},
	{entity.IndustryEducation, []string{"edu", "school", "univ", "learn"}},
}

// Fallback para nomes que a heurística não reconhece. Não é erro: é o melhor
// chute possível sem dado firmográfico de verdade.
var industryFallback = []entity.Industry{
	entity.IndustryTechnology,
	entity.IndustryManufacturing,
	entity.IndustryFinance,
	entity.IndustryOther,
}

// DetermineIndustry classifica pela presença de keywords no nome da empresa.
// Sem match, escolhe de forma determinística (hash do nome) dentro do
// fallback, para que re-segmentar o mesmo lead não mude o resultado.
func DetermineIndustry(companyName string) entity.Industry {
	name := strings.ToLower(companyName)

	for _, rule := range industryKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.industry
			}
		}
	}

	return industryFallback[stableHash(name)%uint32(len(industryFallback))]
}

// DetermineMaturity classifica o porte do cliente por gasto e volume.
func DetermineMaturity(quoteValue float64, itemCount int) entity.MaturityLevel {
	switch {
	case quoteValue > 50000 || itemCount > 100:
		return entity.MaturityEnterprise
	case quoteValue > 10000 || itemCount > 20:
		return entity.MaturityMature
	case quoteValue > 5000:
		return entity.MaturityGrowth
	default:
		return entity.MaturityEarlyStage
	}
}

// AssignSegment mapeia (indústria, maturidade) para o segmento estratégico.
func AssignSegment(industry entity.Industry, maturity entity.MaturityLevel) entity.Segment {
	switch {
	case industry == entity.IndustryTechnology && (maturity == entity.MaturityMature || maturity == entity.MaturityEnterprise):
		return entity.SegmentHighValueTech
	case industry == entity.IndustryHealthcare:
		return entity.SegmentHealthcareInnovators
	case industry == entity.IndustryFinance && maturity == entity.MaturityEnterprise:
		return entity.SegmentFinancialEnterprise
	case industry == entity.IndustryRetail && maturity == entity.MaturityGrowth:
		return entity.SegmentRetailGrowth
	case industry == entity.IndustryManufacturing:
		return entity.SegmentManufacturingDigital
	case industry == entity.IndustryEducation:
		return entity.SegmentEducationTech
	default:
		return entity.SegmentGeneral
	}
}

// ParseJobRole normaliza o cargo em texto livre para o enum.
// Os valores canônicos do enum re-parseiam para si mesmos.
//
// Siglas (CTO, VP, IT...) são comparadas por palavra inteira, não por
// substring: "director" contém "cto" e viraria CTO no Contains.
func ParseJobRole(role string) entity.JobRole {
	if role == "" {
		return entity.RoleOther
	}

	r := strings.ToLower(role)
	words := strings.FieldsFunc(r, func(c rune) bool {
		return c < 'a' || c > 'z'
	})
	hasWord := func(w string) bool {
		for _, token := range words {
			if token == w {
				return true
			}
		}
		return false
	}

	switch {
	case hasWord("cto") || strings.Contains(r, "chief technology"):
		return entity.RoleCTO
	case hasWord("cio") || strings.Contains(r, "chief information"):
		return entity.RoleCIO
	case hasWord("cfo") || strings.Contains(r, "chief financial"):
		return entity.RoleCFO
	case hasWord("ceo") || strings.Contains(r, "chief executive"):
		return entity.RoleCEO
	case hasWord("vp") && strings.Contains(r, "eng"):
		return entity.RoleVPEngineering
	case hasWord("vp") && strings.Contains(r, "sales"):
		return entity.RoleVPSales
	case hasWord("vp") && strings.Contains(r, "operation"):
		return entity.RoleVPOperations
	case strings.Contains(r, "director") && hasWord("it"):
		return entity.RoleDirectorIT
	case strings.Contains(r, "manager"):
		return entity.RoleManager
	case strings.Contains(r, "procurement") || strings.Contains(r, "purchasing"):
		return entity.RoleProcurement
	default:
		return entity.RoleOther
	}
}

// defaultPastEngagements simula o histórico de engajamento (0 a 5) quando o
// CRM não informa. Determinístico pela identidade do lead.
func defaultPastEngagements(key string) int {
	return int(stableHash(strings.ToLower(key)) % 6)
}

func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
