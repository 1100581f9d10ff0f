package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/infra/http/middleware"
	"github.com/xavierca1/coresales/internal/infra/queue"
	"github.com/xavierca1/coresales/internal/usecase"
)

type LeadHandler struct {
	leadRepo    entity.LeadRepositoryInterface
	enricher    *usecase.EnrichLeadUseCase
	producer    usecase.QueueProducerInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface, enricher *usecase.EnrichLeadUseCase, producer usecase.QueueProducerInterface) *LeadHandler {
	return &LeadHandler{
		leadRepo:    leadRepo,
		enricher:    enricher,
		producer:    producer,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type CaptureLeadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Lead    *entity.Lead `json:"lead,omitempty"`
}

// CaptureLead recebe um lead, enriquece na hora e persiste.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if req.CompanyName == "" {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Success: false, Message: "company_name is required"})
		return
	}

	lead := usecase.LeadFromInput(req)
	if err := h.enricher.Execute(ctx, lead); err != nil {
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{Success: false, Message: "Failed to enrich lead"})
		return
	}
	middleware.RecordLeadEnriched()

	if err := h.leadRepo.Upsert(ctx, lead); err != nil {
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{Success: false, Message: "Failed to save lead"})
		return
	}

	writeJSON(w, http.StatusOK, CaptureLeadResponse{Success: true, Lead: lead})
}

// ListLeads devolve a base atual, na ordem do banco.
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadRepo.ListAll(r.Context(), 1000)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list leads"})
		return
	}

	if leads == nil {
		leads = []entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

type BulkUploadResponse struct {
	Success  bool     `json:"success"`
	Uploaded int      `json:"uploaded"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// BulkUpload enfileira um lote de leads crus. Quem enriquece e persiste é o
// worker da fila; falha por registro não derruba o lote.
func (h *LeadHandler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var inputs []usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeJSON(w, http.StatusBadRequest, BulkUploadResponse{Success: false, Errors: []string{"invalid JSON"}})
		return
	}

	uploaded := 0
	var errors []string

	for _, in := range inputs {
		if in.CompanyName == "" {
			errors = append(errors, "missing company_name")
			continue
		}

		role := in.JobRole
		if role == "" {
			role = in.Role
		}

		payload := queue.LeadPayload{
			CompanyName:     in.CompanyName,
			Email:           in.Email,
			JobRole:         role,
			QuoteValue:      in.QuoteValue,
			ItemCount:       in.ItemCount,
			ConversionDays:  in.ConversionDays,
			PastEngagements: in.PastEngagements,
			Source:          "upload",
		}

		if err := h.producer.PublishLead(ctx, payload); err != nil {
			errors = append(errors, in.CompanyName+": "+err.Error())
			continue
		}
		uploaded++
	}

	// Mostra só os 5 primeiros erros
	if len(errors) > 5 {
		errors = errors[:5]
	}

	writeJSON(w, http.StatusOK, BulkUploadResponse{
		Success:  true,
		Uploaded: uploaded,
		Failed:   len(inputs) - uploaded,
		Errors:   errors,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
