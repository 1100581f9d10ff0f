package worker

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/infra/http/middleware"
	"github.com/xavierca1/coresales/internal/usecase"
)

// maxBatchPerSweep limita quantos destinatários uma campanha processa por
// sweep. O que passar disso fica para um sweep futuro, não é descartado do
// snapshot.
const maxBatchPerSweep = 50

// SalesSender é o colaborador de envio (SMTP + LLM).
type SalesSender interface {
	SendSales(ctx context.Context, to, subject string, lead *entity.Lead, uc *entity.UseCase) (string, error)
}

// DispatchResult é o resultado por destinatário. Falha não aborta o lote.
type DispatchResult struct {
	Email  string `json:"email"`
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}

type DispatchReport struct {
	CampaignID string           `json:"campaign_id"`
	Attempted  int              `json:"attempted"`
	Sent       int              `json:"sent"`
	Results    []DispatchResult `json:"results"`
}

// CampaignDispatcher percorre o snapshot da campanha enviando no ritmo
// configurado (60s / throttle_rate entre envios, token bucket). O envio é
// estritamente serial de propósito: a espera entre envios É o rate limit.
type CampaignDispatcher struct {
	LeadRepo     entity.LeadRepositoryInterface
	CampaignRepo entity.CampaignRepositoryInterface
	Mailer       SalesSender
	Catalog      []entity.UseCase
}

func NewCampaignDispatcher(leadRepo entity.LeadRepositoryInterface, campaignRepo entity.CampaignRepositoryInterface, mailer SalesSender, catalog []entity.UseCase) *CampaignDispatcher {
	return &CampaignDispatcher{
		LeadRepo:     leadRepo,
		CampaignRepo: campaignRepo,
		Mailer:       mailer,
		Catalog:      catalog,
	}
}

// Dispatch processa um lote da campanha e fecha em completed, persistindo o
// contador final. Falha por destinatário é isolada: loga, registra no report
// e segue para o próximo sem incrementar o contador.
func (d *CampaignDispatcher) Dispatch(ctx context.Context, campaign *entity.Campaign) (*DispatchReport, error) {
	log.Printf("🚀 Executando campanha: %s (%d destinatários, %d emails/min)",
		campaign.Name, len(campaign.TargetLeads), campaign.ThrottleRate)

	batch := campaign.TargetLeads
	if len(batch) > maxBatchPerSweep {
		batch = batch[:maxBatchPerSweep]
	}

	var uc *entity.UseCase
	if campaign.UseCaseID != "" {
		uc = usecase.FindUseCaseByID(d.Catalog, campaign.UseCaseID)
	}

	subject := fmt.Sprintf("Exclusive %s Opportunity", campaign.CampaignType)
	limiter := rate.NewLimiter(rate.Every(campaign.SendInterval()), 1)

	report := &DispatchReport{CampaignID: campaign.ID}
	sent := 0

	for _, email := range batch {
		if err := limiter.Wait(ctx); err != nil {
			return report, err
		}

		report.Attempted++

		lead, err := d.LeadRepo.FindByEmail(ctx, email)
		if err != nil {
			log.Printf("⚠️ Lead %s não encontrado: %v", email, err)
			report.Results = append(report.Results, DispatchResult{Email: email, Reason: "lead not found"})
			continue
		}

		if _, err := d.Mailer.SendSales(ctx, email, subject, lead, uc); err != nil {
			log.Printf("⚠️ Falha enviando para %s: %v", email, err)
			middleware.RecordEmailSent("failed")
			report.Results = append(report.Results, DispatchResult{Email: email, Reason: err.Error()})
			continue
		}

		middleware.RecordEmailSent("sent")
		sent++
		report.Results = append(report.Results, DispatchResult{Email: email, Sent: true})
	}

	report.Sent = sent
	campaign.EmailsSent += sent
	campaign.Status = entity.CampaignStatusCompleted

	if err := d.CampaignRepo.UpdateStatus(ctx, campaign.ID, entity.CampaignStatusCompleted, campaign.EmailsSent); err != nil {
		log.Printf("❌ Erro persistindo progresso da campanha %s: %v", campaign.Name, err)
		return report, err
	}

	middleware.RecordCampaignExecuted()
	log.Printf("✅ Campanha %s concluída: %d/%d emails enviados", campaign.Name, sent, report.Attempted)
	return report, nil
}
