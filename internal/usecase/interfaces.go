package usecase

import (
	"context"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/infra/integration/crm"
	"github.com/xavierca1/coresales/internal/infra/queue"
)

// ScoringGateway é o modelo externo de conversão. Recebe o vetor
// [quote_value, item_count, conversion_days] e devolve p em [0,1].
type ScoringGateway interface {
	PredictProbability(ctx context.Context, quoteValue float64, itemCount, conversionDays int) (float64, error)
}

// CRMGateway é a integração com o CRM (Salesforce ou mock).
type CRMGateway interface {
	FetchLeads(ctx context.Context, limit int) ([]crm.LeadRecord, error)
	UpdateLeadAIData(ctx context.Context, leadID string, leadScore float64, useCaseTitle string) error
}

// QueueProducerInterface publica leads crus na fila de ingestão.
type QueueProducerInterface interface {
	PublishLead(ctx context.Context, payload queue.LeadPayload) error
}

// EmailService gera e envia o email de vendas. A mensagem de retorno é
// informativa (sucesso ou categoria da falha).
type EmailService interface {
	SendSales(ctx context.Context, to, subject string, lead *entity.Lead, uc *entity.UseCase) (string, error)
}
