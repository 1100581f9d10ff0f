package catalog

import (
	"github.com/xavierca1/coresales/internal/entity"
)

// Catálogo fixo de histórias de sucesso, carregado uma vez no boot.
// A ordem importa: o matcher varre na ordem de declaração.
var useCases = []entity.UseCase{
	{
		ID:              "UC001",
		Title:           "AI-Driven Inventory Optimization",
		Description:     "Reducing stockouts and overstock for manufacturing clients using predictive analytics.",
		Industry:        entity.IndustryManufacturing,
		PainPoints:      []string{"High inventory costs", "Frequent stockouts", "Supply chain visibility"},
		SolutionSummary: "Implemented our AI forecasting model to predict material needs 4 weeks in advance.",
		SuccessMetrics:  "Reduced inventory holding costs by 22% in 6 months.",
		RelevantSegments: []entity.Segment{
			entity.SegmentManufacturingDigital,
			entity.SegmentGeneral,
		},
	},
	{
		ID:              "UC002",
		Title:           "Cloud Migration Accelerator",
		Description:     "Seamless transition from legacy on-prem systems to cloud infrastructure for financial institutions.",
		Industry:        entity.IndustryFinance,
		PainPoints:      []string{"Legacy system downtime", "Security compliance risks", "Slow feature rollouts"},
		SolutionSummary: "Deployed our secure migration framework with zero downtime guarantees.",
		SuccessMetrics:  "Improved transaction speed by 40% while maintaining ISO 27001 compliance.",
		RelevantSegments: []entity.Segment{
			entity.SegmentFinancialEnterprise,
		},
	},
	{
		ID:              "UC003",
		Title:           "Patient Experience Data Platform",
		Description:     "Unified data layer for healthcare providers to improve patient engagement.",
		Industry:        entity.IndustryHealthcare,
		PainPoints:      []string{"Siloed patient data", "Low patient engagement", "Regulatory reporting burdens"},
		SolutionSummary: "Integrated 5 different EHR systems into a single patient 360 view.",
		SuccessMetrics:  "Increased patient portal adoption by 35%.",
		RelevantSegments: []entity.Segment{
			entity.SegmentHealthcareInnovators,
		},
	},
	{
		ID:              "UC004",
		Title:           "Omnichannel Retail Analytics",
		Description:     "Connecting online and offline sales data for personalized customer journeys.",
		Industry:        entity.IndustryRetail,
		PainPoints:      []string{"Disconnected customer journey", "Inefficient marketing spend", "Low retention"},
		SolutionSummary: "Implemented real-time attribution modeling across web, app, and in-store.",
		SuccessMetrics:  "Boosted repeat purchase rate by 18% in Q4.",
		RelevantSegments: []entity.Segment{
			entity.SegmentRetailGrowth,
		},
	},
	{
		ID:              "UC005",
		Title:           "Next-Gen EdTech Infrastructure",
		Description:     "Scalable infrastructure for remote learning and digital campuses.",
		Industry:        entity.IndustryEducation,
		PainPoints:      []string{"Video lag in classrooms", "Security vulnerabilities", "User management overhead"},
		SolutionSummary: "Rolled out high-bandwidth, secure hybrid cloud environment.",
		SuccessMetrics:  "Supported 50k concurrent users with 99.99% uptime.",
		RelevantSegments: []entity.Segment{
			entity.SegmentEducationTech,
		},
	},
	{
		ID:              "UC006",
		Title:           "Enterprise DevOps Transformation",
		Description:     "Automating CI/CD pipelines for high-growth tech companies.",
		Industry:        entity.IndustryTechnology,
		PainPoints:      []string{"Slow deployment cycles", "High bug rate", "Developer burnout"},
		SolutionSummary: "Standardized deployment pipelines and automated testing.",
		SuccessMetrics:  "Reduced deployment time from 2 days to 2 hours.",
		RelevantSegments: []entity.Segment{
			entity.SegmentHighValueTech,
		},
	},
}

// UseCases retorna o catálogo completo, na ordem de declaração.
func UseCases() []entity.UseCase {
	return useCases
}
