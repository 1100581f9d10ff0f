package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/usecase"
)

type UseCaseHandler struct {
	catalog []entity.UseCase
	crm     usecase.CRMGateway // nil desabilita o write-back
}

func NewUseCaseHandler(catalog []entity.UseCase, crm usecase.CRMGateway) *UseCaseHandler {
	return &UseCaseHandler{catalog: catalog, crm: crm}
}

func (h *UseCaseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}

type matchUseCaseRequest struct {
	ID          string  `json:"id,omitempty"` // ID no CRM, para write-back
	CompanyName string  `json:"company_name"`
	QuoteValue  float64 `json:"quote_value"`
	ItemCount   int     `json:"item_count"`
}

// HandleMatch infere o perfil do lead e devolve a história mais relevante.
func (h *UseCaseHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchUseCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	industry := usecase.DetermineIndustry(req.CompanyName)
	maturity := usecase.DetermineMaturity(req.QuoteValue, req.ItemCount)
	segment := usecase.AssignSegment(industry, maturity)

	matched := usecase.MatchUseCase(h.catalog, industry, segment)

	// Write-back da recomendação no CRM, quando habilitado
	if h.crm != nil && req.ID != "" {
		if err := h.crm.UpdateLeadAIData(r.Context(), req.ID, 0, matched.Title); err != nil {
			log.Printf("⚠️ Write-back no CRM falhou para %s: %v", req.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recommended_use_case": matched,
		"segment_assigned":     segment,
		"maturity_level":       maturity,
		"industry_detected":    industry,
	})
}
