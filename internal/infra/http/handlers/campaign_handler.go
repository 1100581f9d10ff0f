package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/usecase"
)

type CampaignHandler struct {
	createUC     *usecase.CreateCampaignUseCase
	campaignRepo entity.CampaignRepositoryInterface
}

func NewCampaignHandler(createUC *usecase.CreateCampaignUseCase, campaignRepo entity.CampaignRepositoryInterface) *CampaignHandler {
	return &CampaignHandler{createUC: createUC, campaignRepo: campaignRepo}
}

// HandleCreate cria a campanha com o snapshot da audiência atual.
func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	output, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if usecase.IsDomainError(err) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":        true,
		"campaign_id":    output.CampaignID,
		"leads_targeted": output.LeadsTargeted,
		"throttle_rate":  output.ThrottleRate,
		"scheduled_for":  output.ScheduledFor,
	})
}

func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignRepo.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list campaigns"})
		return
	}

	if campaigns == nil {
		campaigns = []entity.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaigns)
}
