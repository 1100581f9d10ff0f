package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/infra/http/middleware"
	"github.com/xavierca1/coresales/internal/usecase"
)

type EmailHandler struct {
	mailer  usecase.EmailService
	scoring usecase.ScoringGateway
	catalog []entity.UseCase
}

func NewEmailHandler(mailer usecase.EmailService, scoring usecase.ScoringGateway, catalog []entity.UseCase) *EmailHandler {
	return &EmailHandler{mailer: mailer, scoring: scoring, catalog: catalog}
}

type sendEmailRequest struct {
	To        string  `json:"to"`
	Subject   string  `json:"subject,omitempty"`
	UseCaseID string  `json:"use_case_id,omitempty"`
	Company   string  `json:"company_name"`
	JobRole   string  `json:"job_role,omitempty"`
	Quote     float64 `json:"quote_value"`
	Items     int     `json:"item_count"`
	Score     float64 `json:"lead_score,omitempty"`
}

// HandleSendEmail envia um email avulso de vendas, fora do fluxo de campanha.
func (h *EmailHandler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.To == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to is required"})
		return
	}

	industry := usecase.DetermineIndustry(req.Company)
	maturity := usecase.DetermineMaturity(req.Quote, req.Items)
	segment := usecase.AssignSegment(industry, maturity)

	lead := &entity.Lead{
		CompanyName:   req.Company,
		Email:         req.To,
		JobRole:       usecase.ParseJobRole(req.JobRole),
		Industry:      industry,
		MaturityLevel: maturity,
		Segment:       segment,
		QuoteValue:    req.Quote,
		ItemCount:     req.Items,
		LeadScore:     req.Score,
	}

	matched := usecase.FindUseCaseByID(h.catalog, req.UseCaseID)
	if matched == nil {
		best := usecase.MatchUseCase(h.catalog, industry, segment)
		matched = &best
	}

	subject := req.Subject
	if subject == "" {
		subject = "How " + string(industry) + " leaders are modernizing IT"
	}

	message, err := h.mailer.SendSales(r.Context(), req.To, subject, lead, matched)
	if err != nil {
		middleware.RecordEmailSent("failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	middleware.RecordEmailSent("sent")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  message,
		"use_case": matched.Title,
	})
}

type predictRequest struct {
	QuoteValue     float64 `json:"quote_value"`
	ItemCount      int     `json:"item_count"`
	ConversionDays int     `json:"conversion_days"`
}

// HandlePredict expõe o modelo de conversão direto, sem persistir nada.
func (h *EmailHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	probability, err := h.scoring.PredictProbability(r.Context(), req.QuoteValue, req.ItemCount, req.ConversionDays)
	if err != nil {
		middleware.RecordIntegrationError("scoring")
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "scoring service unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lead_score":             round2(probability * 100),
		"conversion_probability": probability,
	})
}
