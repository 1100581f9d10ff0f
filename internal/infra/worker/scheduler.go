package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/usecase"
)

// Resegmenter é o passe de re-segmentação da base (job mensal).
type Resegmenter interface {
	Execute(ctx context.Context, force bool) (*usecase.SegmentationReport, error)
}

// CRMSyncer dispara a ingestão diária do CRM.
type CRMSyncer interface {
	Execute(ctx context.Context) (*usecase.CRMSyncOutput, error)
}

// CampaignRunner processa uma campanha devida.
type CampaignRunner interface {
	Dispatch(ctx context.Context, c *entity.Campaign) (*DispatchReport, error)
}

const defaultSweepInterval = 15 * time.Minute

// AutomationScheduler roda os três ciclos recorrentes, cada um na sua
// goroutine: re-segmentação mensal (dia 1, 02:00), sweep de campanhas
// (15 em 15 min) e CRM sync diário (01:00). Um ciclo travado não segura os
// outros; o sleep de throttling de uma campanha também não.
type AutomationScheduler struct {
	CampaignRepo entity.CampaignRepositoryInterface
	Resegmenter  Resegmenter
	Syncer       CRMSyncer
	Runner       CampaignRunner

	SweepInterval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewAutomationScheduler(campaignRepo entity.CampaignRepositoryInterface, resegmenter Resegmenter, syncer CRMSyncer, runner CampaignRunner) *AutomationScheduler {
	return &AutomationScheduler{
		CampaignRepo:  campaignRepo,
		Resegmenter:   resegmenter,
		Syncer:        syncer,
		Runner:        runner,
		SweepInterval: defaultSweepInterval,
	}
}

// Start é idempotente: chamar com o scheduler rodando só avisa e retorna.
func (s *AutomationScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		log.Println("⚠️ Scheduler já está rodando")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true

	s.wg.Add(3)
	go s.runMonthlySegmentation(ctx)
	go s.runCampaignSweep(ctx)
	go s.runCRMSync(ctx)

	log.Println("✅ Automation Scheduler iniciado")
	log.Println("   - Re-segmentação mensal: dia 1 às 02:00")
	log.Printf("   - Sweep de campanhas: a cada %s", s.SweepInterval)
	log.Println("   - CRM sync: diário às 01:00")
}

// Stop é idempotente e espera os ciclos em andamento terminarem.
func (s *AutomationScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	log.Println("✅ Scheduler parado")
}

func (s *AutomationScheduler) runMonthlySegmentation(ctx context.Context) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(time.Until(nextMonthlyRun(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.monthlySegmentationJob(ctx)
		}
	}
}

func (s *AutomationScheduler) monthlySegmentationJob(ctx context.Context) {
	log.Println("🔄 Iniciando re-segmentação mensal")

	report, err := s.Resegmenter.Execute(ctx, true)
	if err != nil {
		// Ciclo falhou inteiro (ex: banco fora); o próximo tick tenta de novo
		log.Printf("❌ Re-segmentação mensal falhou: %v", err)
		return
	}

	log.Printf("✅ Re-segmentação mensal concluída: %d atualizados, %d falhas", report.Updated, report.Failed)
	for change, count := range report.Transitions {
		log.Printf("   - %s: %d lead(s)", change, count)
	}
}

func (s *AutomationScheduler) runCampaignSweep(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepCampaigns(ctx)
		}
	}
}

// sweepCampaigns marca cada campanha devida como active e despacha numa
// goroutine própria, para o sleep de throttling não atrasar o próximo sweep.
func (s *AutomationScheduler) sweepCampaigns(ctx context.Context) {
	campaigns, err := s.CampaignRepo.ListByStatus(ctx, entity.CampaignStatusScheduled)
	if err != nil {
		log.Printf("❌ Sweep de campanhas falhou: %v", err)
		return
	}

	now := time.Now()
	for i := range campaigns {
		campaign := campaigns[i]
		if !campaign.IsDue(now) {
			continue
		}

		if err := s.CampaignRepo.UpdateStatus(ctx, campaign.ID, entity.CampaignStatusActive, campaign.EmailsSent); err != nil {
			log.Printf("❌ Erro ativando campanha %s: %v", campaign.Name, err)
			continue
		}
		campaign.Status = entity.CampaignStatusActive

		s.wg.Add(1)
		go func(c entity.Campaign) {
			defer s.wg.Done()
			if _, err := s.Runner.Dispatch(ctx, &c); err != nil {
				log.Printf("❌ Erro executando campanha %s: %v", c.Name, err)
			}
		}(campaign)
	}
}

func (s *AutomationScheduler) runCRMSync(ctx context.Context) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(time.Until(nextDailyRun(time.Now(), 1)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if _, err := s.Syncer.Execute(ctx); err != nil {
				log.Printf("❌ CRM sync falhou: %v", err)
			}
		}
	}
}

// nextMonthlyRun: próxima ocorrência de dia 1 às 02:00.
func nextMonthlyRun(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), 1, 2, 0, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 1, 0)
	}
	return candidate
}

// nextDailyRun: próxima ocorrência do horário cheio informado.
func nextDailyRun(now time.Time, hour int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}
