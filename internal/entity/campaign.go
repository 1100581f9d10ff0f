package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type CampaignType string

const (
	CampaignOnboarding   CampaignType = "Onboarding"
	CampaignNurture      CampaignType = "Nurture"
	CampaignCrossSell    CampaignType = "Cross-Sell"
	CampaignUpsell       CampaignType = "Upsell"
	CampaignReEngagement CampaignType = "Re-engagement"
)

// Ciclo de vida: scheduled -> active -> completed. Sem volta e sem cancelamento.
const (
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

const DefaultThrottleRate = 10 // emails por minuto

// Campaign guarda o snapshot da audiência tirado na criação.
// Re-segmentar leads depois NÃO altera TargetLeads nem EmailsScheduled.
type Campaign struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	CampaignType    CampaignType `json:"campaign_type"`
	TargetSegment   Segment      `json:"target_segment"`
	UseCaseID       string       `json:"use_case_id,omitempty"`
	ThrottleRate    int          `json:"throttle_rate"`
	SendTime        *time.Time   `json:"send_time,omitempty"`
	Status          string       `json:"status"`
	EmailsScheduled int          `json:"emails_scheduled"`
	EmailsSent      int          `json:"emails_sent"`
	TargetLeads     []string     `json:"target_leads"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Factory
func NewCampaign(name string, ctype CampaignType, segment Segment, useCaseID string, throttleRate int, sendTime *time.Time, targetLeads []string) (*Campaign, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if throttleRate <= 0 {
		throttleRate = DefaultThrottleRate
	}

	return &Campaign{
		ID:              uuid.New().String(),
		Name:            name,
		CampaignType:    ctype,
		TargetSegment:   segment,
		UseCaseID:       useCaseID,
		ThrottleRate:    throttleRate,
		SendTime:        sendTime,
		Status:          CampaignStatusScheduled,
		EmailsScheduled: len(targetLeads),
		EmailsSent:      0,
		TargetLeads:     targetLeads,
		CreatedAt:       time.Now(),
	}, nil
}

// IsDue: campanha sem send_time dispara no primeiro sweep.
func (c *Campaign) IsDue(now time.Time) bool {
	if c.SendTime == nil {
		return true
	}
	return !c.SendTime.After(now)
}

// SendInterval é a espera entre envios consecutivos (60s / throttle_rate).
func (c *Campaign) SendInterval() time.Duration {
	rate := c.ThrottleRate
	if rate <= 0 {
		rate = DefaultThrottleRate
	}
	return time.Duration(float64(time.Minute) / float64(rate))
}

type CampaignRepositoryInterface interface {
	Insert(ctx context.Context, c *Campaign) error
	ListAll(ctx context.Context) ([]Campaign, error)
	ListByStatus(ctx context.Context, status string) ([]Campaign, error)
	UpdateStatus(ctx context.Context, id, status string, emailsSent int) error
}
