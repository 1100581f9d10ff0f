package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/xavierca1/coresales/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Insert(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (
			id, name, campaign_type, target_segment, use_case_id,
			throttle_rate, send_time, status, emails_scheduled, emails_sent,
			target_leads, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		c.ID,
		c.Name,
		string(c.CampaignType),
		string(c.TargetSegment),
		nullString(c.UseCaseID),
		c.ThrottleRate,
		c.SendTime,
		c.Status,
		c.EmailsScheduled,
		c.EmailsSent,
		pq.Array(c.TargetLeads),
		c.CreatedAt,
	)

	return err
}

func (r *CampaignRepository) ListAll(ctx context.Context) ([]entity.Campaign, error) {
	return r.list(ctx, selectCampaignColumns+` FROM campaigns ORDER BY created_at`)
}

func (r *CampaignRepository) ListByStatus(ctx context.Context, status string) ([]entity.Campaign, error) {
	return r.list(ctx, selectCampaignColumns+` FROM campaigns WHERE status = $1 ORDER BY created_at`, status)
}

// UpdateStatus grava a transição de estado e o contador de envios.
// São os únicos campos mutáveis depois da criação: o snapshot não muda.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id, status string, emailsSent int) error {
	query := `UPDATE campaigns SET status = $2, emails_sent = $3 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, status, emailsSent)
	return err
}

const selectCampaignColumns = `
	SELECT id, name, campaign_type, target_segment, use_case_id,
	       throttle_rate, send_time, status, emails_scheduled, emails_sent,
	       target_leads, created_at`

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]entity.Campaign, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		var useCaseID sql.NullString

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CampaignType,
			&c.TargetSegment,
			&useCaseID,
			&c.ThrottleRate,
			&c.SendTime,
			&c.Status,
			&c.EmailsScheduled,
			&c.EmailsSent,
			pq.Array(&c.TargetLeads),
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		c.UseCaseID = useCaseID.String
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
