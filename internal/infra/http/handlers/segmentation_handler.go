package handlers

import (
	"math"
	"net/http"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/usecase"
)

type SegmentationHandler struct {
	runner   *usecase.RunSegmentationUseCase
	leadRepo entity.LeadRepositoryInterface
}

func NewSegmentationHandler(runner *usecase.RunSegmentationUseCase, leadRepo entity.LeadRepositoryInterface) *SegmentationHandler {
	return &SegmentationHandler{runner: runner, leadRepo: leadRepo}
}

// HandleRun dispara a re-segmentação manual. Com ?force=true re-segmenta
// tudo; sem, só os leads que nunca passaram pelo pipeline.
func (h *SegmentationHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	report, err := h.runner.Execute(r.Context(), force)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"segments_updated":     report.Updated,
		"segment_distribution": report.Distribution,
		"transitions":          report.Transitions,
		"skipped":              report.Skipped,
		"failed":               report.Failed,
	})
}

type segmentStats struct {
	Count                 int                     `json:"count"`
	TotalRevenuePotential float64                 `json:"total_revenue_potential"`
	AvgRevenuePotential   float64                 `json:"avg_revenue_potential"`
	AvgLeadScore          float64                 `json:"avg_lead_score"`
	TopIndustries         map[entity.Industry]int `json:"top_industries"`
}

// HandleAnalytics agrega a distribuição por segmento para o dashboard
// (identificação de oportunidade de cross-sell/upsell).
func (h *SegmentationHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadRepo.ListAll(r.Context(), 1000)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list leads"})
		return
	}

	stats := make(map[entity.Segment]*segmentStats)
	scoreSums := make(map[entity.Segment]float64)

	for _, lead := range leads {
		segment := lead.Segment
		if segment == "" {
			segment = entity.SegmentGeneral
		}

		s, ok := stats[segment]
		if !ok {
			s = &segmentStats{TopIndustries: make(map[entity.Industry]int)}
			stats[segment] = s
		}

		s.Count++
		s.TotalRevenuePotential += lead.RevenuePotential
		scoreSums[segment] += lead.LeadScore
		s.TopIndustries[lead.Industry]++
	}

	for segment, s := range stats {
		s.AvgLeadScore = round2(scoreSums[segment] / float64(s.Count))
		s.AvgRevenuePotential = round2(s.TotalRevenuePotential / float64(s.Count))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_leads": len(leads),
		"segments":    stats,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
