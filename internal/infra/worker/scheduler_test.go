package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/coresales/internal/entity"
	"github.com/xavierca1/coresales/internal/usecase"
)

// MockResegmenter
type MockResegmenter struct {
	mock.Mock
}

func (m *MockResegmenter) Execute(ctx context.Context, force bool) (*usecase.SegmentationReport, error) {
	args := m.Called(ctx, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SegmentationReport), args.Error(1)
}

// MockCRMSyncer
type MockCRMSyncer struct {
	mock.Mock
}

func (m *MockCRMSyncer) Execute(ctx context.Context) (*usecase.CRMSyncOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CRMSyncOutput), args.Error(1)
}

// MockCampaignRunner
type MockCampaignRunner struct {
	mock.Mock
}

func (m *MockCampaignRunner) Dispatch(ctx context.Context, c *entity.Campaign) (*DispatchReport, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DispatchReport), args.Error(1)
}

func newTestScheduler(repo entity.CampaignRepositoryInterface, runner CampaignRunner) *AutomationScheduler {
	s := NewAutomationScheduler(repo, new(MockResegmenter), new(MockCRMSyncer), runner)
	s.SweepInterval = time.Hour // o teste chama o sweep direto
	return s
}

// ============ TESTES ============

// TestSchedulerStartStopIdempotent - Start duplo não sobe ciclos em dobro;
// Stop duplo não explode
func TestSchedulerStartStopIdempotent(t *testing.T) {
	mockRepo := new(MockCampaignRepository)
	mockRepo.On("ListByStatus", mock.Anything, mock.Anything).Return([]entity.Campaign{}, nil)

	s := newTestScheduler(mockRepo, new(MockCampaignRunner))

	s.Start()
	s.Start() // segundo Start é no-op

	s.Stop()
	s.Stop() // segundo Stop também
}

// TestSweepDispatchesOnlyDueCampaigns - O sweep ativa e despacha só o que já
// venceu; campanha futura fica agendada
func TestSweepDispatchesOnlyDueCampaigns(t *testing.T) {
	ctx := context.Background()

	future := time.Now().Add(time.Hour)
	due := entity.Campaign{ID: "camp-due", Name: "Agora", Status: entity.CampaignStatusScheduled}
	notYet := entity.Campaign{ID: "camp-future", Name: "Depois", Status: entity.CampaignStatusScheduled, SendTime: &future}

	mockRepo := new(MockCampaignRepository)
	mockRepo.On("ListByStatus", ctx, entity.CampaignStatusScheduled).Return([]entity.Campaign{due, notYet}, nil)
	mockRepo.On("UpdateStatus", ctx, "camp-due", entity.CampaignStatusActive, 0).Return(nil)

	mockRunner := new(MockCampaignRunner)
	mockRunner.On("Dispatch", ctx, mock.MatchedBy(func(c *entity.Campaign) bool {
		return c.ID == "camp-due" && c.Status == entity.CampaignStatusActive
	})).Return(&DispatchReport{CampaignID: "camp-due"}, nil)

	s := newTestScheduler(mockRepo, mockRunner)

	s.sweepCampaigns(ctx)
	s.wg.Wait() // espera a goroutine de dispatch

	mockRunner.AssertNumberOfCalls(t, "Dispatch", 1)
	mockRepo.AssertNotCalled(t, "UpdateStatus", ctx, "camp-future", mock.Anything, mock.Anything)
}

// TestSweepSkipsCampaignThatFailsActivation - Se não consegue marcar active,
// não despacha (o próximo sweep tenta de novo)
func TestSweepSkipsCampaignThatFailsActivation(t *testing.T) {
	ctx := context.Background()

	due := entity.Campaign{ID: "camp-due", Name: "Agora", Status: entity.CampaignStatusScheduled}

	mockRepo := new(MockCampaignRepository)
	mockRepo.On("ListByStatus", ctx, entity.CampaignStatusScheduled).Return([]entity.Campaign{due}, nil)
	mockRepo.On("UpdateStatus", ctx, "camp-due", entity.CampaignStatusActive, 0).Return(errors.New("deadlock"))

	mockRunner := new(MockCampaignRunner)

	s := newTestScheduler(mockRepo, mockRunner)

	s.sweepCampaigns(ctx)
	s.wg.Wait()

	mockRunner.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

// TestNextMonthlyRun - Dia 1 às 02:00, sempre no futuro
func TestNextMonthlyRun(t *testing.T) {
	loc := time.UTC

	// No meio do mês: vai para o dia 1 do mês seguinte
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, time.September, 1, 2, 0, 0, 0, loc), nextMonthlyRun(now))

	// Dia 1 antes das 02:00: ainda é hoje
	now = time.Date(2026, time.September, 1, 1, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, time.September, 1, 2, 0, 0, 0, loc), nextMonthlyRun(now))

	// Dia 1 depois das 02:00: próximo mês
	now = time.Date(2026, time.September, 1, 3, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, time.October, 1, 2, 0, 0, 0, loc), nextMonthlyRun(now))

	// Virada de ano
	now = time.Date(2026, time.December, 15, 0, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2027, time.January, 1, 2, 0, 0, 0, loc), nextMonthlyRun(now))
}

// TestNextDailyRun - Horário cheio diário, sempre no futuro
func TestNextDailyRun(t *testing.T) {
	loc := time.UTC

	now := time.Date(2026, time.August, 28, 0, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, time.August, 28, 1, 0, 0, 0, loc), nextDailyRun(now, 1))

	now = time.Date(2026, time.August, 28, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, time.August, 29, 1, 0, 0, 0, loc), nextDailyRun(now, 1))

	// Exatamente no horário: agenda para amanhã, não dispara duas vezes
	now = time.Date(2026, time.August, 28, 1, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, time.August, 29, 1, 0, 0, 0, loc), nextDailyRun(now, 1))
}
