package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/xavierca1/coresales/internal/entity"
)

// segmentationWorkers limita o paralelismo do passe de re-segmentação.
// Leads são independentes entre si, então o pool é seguro; quem precisa de
// serialização é só o dispatcher de campanha, não este job.
const segmentationWorkers = 5

// RunSegmentationUseCase re-segmenta a base de leads e contabiliza as
// transições de segmento (sinal de upsell/cross-sell). Falha por lead é
// isolada: loga, conta e segue.
type RunSegmentationUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Enricher *EnrichLeadUseCase
}

func NewRunSegmentationUseCase(leadRepo entity.LeadRepositoryInterface, enricher *EnrichLeadUseCase) *RunSegmentationUseCase {
	return &RunSegmentationUseCase{LeadRepo: leadRepo, Enricher: enricher}
}

// Execute com force=false só segmenta leads que nunca passaram pelo pipeline.
func (uc *RunSegmentationUseCase) Execute(ctx context.Context, force bool) (*SegmentationReport, error) {
	leads, err := uc.LeadRepo.ListAll(ctx, 1000)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to list leads: " + err.Error()}
	}

	report := &SegmentationReport{
		Total:        len(leads),
		Transitions:  make(map[string]int),
		Distribution: make(map[string]int),
	}

	if len(leads) == 0 {
		log.Println("⚠️ Nenhum lead na base para segmentar")
		return report, nil
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan *entity.Lead)

	for i := 0; i < segmentationWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lead := range jobs {
				uc.resegmentOne(ctx, lead, force, report, &mu)
			}
		}()
	}

	for i := range leads {
		jobs <- &leads[i]
	}
	close(jobs)
	wg.Wait()

	return report, nil
}

func (uc *RunSegmentationUseCase) resegmentOne(ctx context.Context, lead *entity.Lead, force bool, report *SegmentationReport, mu *sync.Mutex) {
	if !force && lead.LastSegmentedAt != nil {
		mu.Lock()
		report.Skipped++
		mu.Unlock()
		return
	}

	oldSegment := lead.Segment
	if oldSegment == "" {
		oldSegment = "UNKNOWN"
	}

	if err := uc.Enricher.Execute(ctx, lead); err != nil {
		log.Printf("⚠️ Erro segmentando %s: %v", lead.CompanyName, err)
		mu.Lock()
		report.Failed++
		mu.Unlock()
		return
	}

	if err := uc.LeadRepo.Upsert(ctx, lead); err != nil {
		log.Printf("⚠️ Erro salvando lead %s: %v", lead.CompanyName, err)
		mu.Lock()
		report.Failed++
		mu.Unlock()
		return
	}

	mu.Lock()
	report.Updated++
	report.Distribution[string(lead.Segment)]++
	if oldSegment != lead.Segment {
		key := fmt.Sprintf("%s → %s", oldSegment, lead.Segment)
		report.Transitions[key]++
	}
	mu.Unlock()
}
