package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wageRateRepository struct {
	db *database.DB
}

func NewWageRateRepository(db *database.DB) wage.RateRepository {
	return &wageRateRepository{db: db}
}

func (r *wageRateRepository) FindEffective(ctx context.Context, organizationID, workerID string, start, end time.Time) (wage.RateSchedule, error) {
	q := GetQuerier(ctx, r.db)

	// Overlapping ranges with the same effective_from are broken by the
	// higher rate, then by id, so resolution stays deterministic.
	query := `
		SELECT id, organization_id, worker_id, hourly_rate, effective_from, effective_to, created_at
		FROM wage_rates
		WHERE organization_id = $1 AND worker_id = $2
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to > $4)
		ORDER BY effective_from DESC, hourly_rate DESC, id ASC
		LIMIT 1
	`

	var rs wage.RateSchedule
	err := q.QueryRow(ctx, query, organizationID, workerID, end, start).Scan(
		&rs.ID, &rs.OrganizationID, &rs.WorkerID, &rs.HourlyRate, &rs.EffectiveFrom, &rs.EffectiveTo, &rs.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.RateSchedule{}, wage.ErrNoEffectiveRate
		}
		return wage.RateSchedule{}, fmt.Errorf("failed to resolve wage rate: %w", err)
	}

	return rs, nil
}
