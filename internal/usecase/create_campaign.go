package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/coresales/internal/entity"
)

// CreateCampaignUseCase cria a campanha congelando a audiência no momento da
// criação. Mudanças de segmento depois disso não mexem no snapshot.
type CreateCampaignUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	CampaignRepo entity.CampaignRepositoryInterface
}

func NewCreateCampaignUseCase(leadRepo entity.LeadRepositoryInterface, campaignRepo entity.CampaignRepositoryInterface) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{LeadRepo: leadRepo, CampaignRepo: campaignRepo}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, input CreateCampaignInput) (*CreateCampaignOutput, error) {
	if input.Name == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "name is required"}
	}
	if input.TargetSegment == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "target_segment is required"}
	}

	leads, err := uc.LeadRepo.ListAll(ctx, 1000)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to list leads: " + err.Error()}
	}

	// Snapshot da audiência: só os leads no segmento alvo, na ordem do banco
	var targets []string
	for _, lead := range leads {
		if lead.Segment == entity.Segment(input.TargetSegment) && lead.Email != "" {
			targets = append(targets, lead.Email)
		}
	}

	campaign, err := entity.NewCampaign(
		input.Name,
		entity.CampaignType(input.CampaignType),
		entity.Segment(input.TargetSegment),
		input.UseCaseID,
		input.ThrottleRate,
		input.SendTime,
		targets,
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.CampaignRepo.Insert(ctx, campaign); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist campaign: " + err.Error()}
	}

	return &CreateCampaignOutput{
		CampaignID:    campaign.ID,
		LeadsTargeted: len(targets),
		ThrottleRate:  fmt.Sprintf("%d emails/min", campaign.ThrottleRate),
		ScheduledFor:  campaign.SendTime,
	}, nil
}
