package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/coresales/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert grava o lead usando o email como chave. Todo passe de enriquecimento
// sobrescreve os campos derivados (last-write-wins, sem transação entre ciclos).
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			email, company_name, industry, maturity_level, segment, job_role,
			is_decision_maker, quote_value, item_count, conversion_days,
			past_engagements, revenue_potential, lead_score,
			conversion_probability, last_segmented_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			company_name           = EXCLUDED.company_name,
			industry               = EXCLUDED.industry,
			maturity_level         = EXCLUDED.maturity_level,
			segment                = EXCLUDED.segment,
			job_role               = EXCLUDED.job_role,
			is_decision_maker      = EXCLUDED.is_decision_maker,
			quote_value            = EXCLUDED.quote_value,
			item_count             = EXCLUDED.item_count,
			conversion_days        = EXCLUDED.conversion_days,
			past_engagements       = EXCLUDED.past_engagements,
			revenue_potential      = EXCLUDED.revenue_potential,
			lead_score             = EXCLUDED.lead_score,
			conversion_probability = EXCLUDED.conversion_probability,
			last_segmented_at      = EXCLUDED.last_segmented_at,
			updated_at             = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.Email,
		lead.CompanyName,
		string(lead.Industry),
		string(lead.MaturityLevel),
		string(lead.Segment),
		string(lead.JobRole),
		lead.IsDecisionMaker,
		lead.QuoteValue,
		lead.ItemCount,
		lead.ConversionDays,
		lead.PastEngagements,
		lead.RevenuePotential,
		lead.LeadScore,
		lead.ConversionProbability,
		lead.LastSegmentedAt,
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	return err
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := selectLeadColumns + ` FROM leads WHERE email = $1`

	row := r.DB.QueryRowContext(ctx, query, email)
	return scanLead(row)
}

func (r *LeadRepository) ListAll(ctx context.Context, limit int) ([]entity.Lead, error) {
	if limit <= 0 {
		limit = 1000
	}

	query := selectLeadColumns + ` FROM leads ORDER BY created_at LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

const selectLeadColumns = `
	SELECT id, email, company_name, industry, maturity_level, segment, job_role,
	       is_decision_maker, quote_value, item_count, conversion_days,
	       past_engagements, revenue_potential, lead_score,
	       conversion_probability, last_segmented_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var industry, maturity, segment, jobRole sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Email,
		&lead.CompanyName,
		&industry,
		&maturity,
		&segment,
		&jobRole,
		&lead.IsDecisionMaker,
		&lead.QuoteValue,
		&lead.ItemCount,
		&lead.ConversionDays,
		&lead.PastEngagements,
		&lead.RevenuePotential,
		&lead.LeadScore,
		&lead.ConversionProbability,
		&lead.LastSegmentedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Industry = entity.Industry(industry.String)
	lead.MaturityLevel = entity.MaturityLevel(maturity.String)
	lead.Segment = entity.Segment(segment.String)
	lead.JobRole = entity.JobRole(jobRole.String)

	return &lead, nil
}
