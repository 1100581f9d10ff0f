package entity

// UseCase é uma história de sucesso do catálogo, usada para personalizar
// os emails de campanha. Imutável em runtime.
type UseCase struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Industry         Industry  `json:"industry"`
	PainPoints       []string  `json:"pain_points"`
	SolutionSummary  string    `json:"solution_summary"`
	SuccessMetrics   string    `json:"success_metrics,omitempty"`
	RelevantSegments []Segment `json:"relevant_segments"`
}

// HasSegment verifica se a história cobre o segmento.
func (u UseCase) HasSegment(s Segment) bool {
	for _, seg := range u.RelevantSegments {
		if seg == s {
			return true
		}
	}
	return false
}
