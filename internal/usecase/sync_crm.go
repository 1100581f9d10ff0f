package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/coresales/internal/infra/queue"
)

// SyncCRMUseCase puxa leads abertos do CRM e joga na fila de ingestão.
// O worker da fila é quem enriquece e persiste.
type SyncCRMUseCase struct {
	CRM      CRMGateway
	Producer QueueProducerInterface
}

func NewSyncCRMUseCase(crm CRMGateway, producer QueueProducerInterface) *SyncCRMUseCase {
	return &SyncCRMUseCase{CRM: crm, Producer: producer}
}

func (uc *SyncCRMUseCase) Execute(ctx context.Context) (*CRMSyncOutput, error) {
	records, err := uc.CRM.FetchLeads(ctx, 500)
	if err != nil {
		return nil, &TechnicalError{Code: "CRM_ERROR", Message: "failed to fetch CRM leads: " + err.Error()}
	}

	queued := 0
	for _, r := range records {
		payload := queue.LeadPayload{
			CompanyName:     r.CompanyName,
			Email:           r.Email,
			JobRole:         r.JobRole,
			QuoteValue:      r.QuoteValue,
			ItemCount:       r.ItemCount,
			ConversionDays:  r.ConversionDays,
			PastEngagements: r.PastEngagements,
			Source:          r.Source,
		}

		if err := uc.Producer.PublishLead(ctx, payload); err != nil {
			// Falha por registro não derruba o sync inteiro
			log.Printf("⚠️ Falha publicando lead %s na fila: %v", r.CompanyName, err)
			continue
		}
		queued++
	}

	log.Printf("✅ CRM sync: %d/%d leads enfileirados", queued, len(records))

	return &CRMSyncOutput{Source: "CRM", RecordsQueued: queued}, nil
}
