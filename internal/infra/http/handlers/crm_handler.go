package handlers

import (
	"net/http"

	"github.com/xavierca1/coresales/internal/usecase"
)

type CRMHandler struct {
	syncUC *usecase.SyncCRMUseCase // nil quando o sync está desabilitado
}

func NewCRMHandler(syncUC *usecase.SyncCRMUseCase) *CRMHandler {
	return &CRMHandler{syncUC: syncUC}
}

// HandleSync puxa os leads abertos do CRM para a fila de ingestão.
func (h *CRMHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if h.syncUC == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "CRM integration disabled (USE_CRM=false)",
		})
		return
	}

	output, err := h.syncUC.Execute(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"source":         output.Source,
		"records_queued": output.RecordsQueued,
	})
}
