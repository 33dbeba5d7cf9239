package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type wageCalculationRepository struct {
	db *database.DB
}

func NewWageCalculationRepository(db *database.DB) wage.CalculationRepository {
	return &wageCalculationRepository{db: db}
}

const calculationColumns = `id, organization_id, worker_id, year, month, total_hours, hourly_rate,
	gross_amount, deductions, net_amount, status, approved_by, created_at, updated_at`

func scanCalculation(row pgx.Row) (wage.Calculation, error) {
	var c wage.Calculation
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.WorkerID, &c.Year, &c.Month, &c.TotalHours, &c.HourlyRate,
		&c.GrossAmount, &c.Deductions, &c.NetAmount, &c.Status, &c.ApprovedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *wageCalculationRepository) Create(ctx context.Context, calc wage.Calculation) (wage.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wage_calculations (
			id, organization_id, worker_id, year, month, total_hours, hourly_rate,
			gross_amount, deductions, net_amount, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + calculationColumns

	id := calc.ID
	if id == "" {
		id = uuid.NewString()
	}

	created, err := scanCalculation(q.QueryRow(ctx, query,
		id, calc.OrganizationID, calc.WorkerID, calc.Year, calc.Month, calc.TotalHours, calc.HourlyRate,
		calc.GrossAmount, calc.Deductions, calc.NetAmount, calc.Status,
	))
	if err != nil {
		return wage.Calculation{}, fmt.Errorf("failed to create wage calculation: %w", err)
	}

	return created, nil
}

func (r *wageCalculationRepository) GetByID(ctx context.Context, id string) (wage.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + calculationColumns + `
		FROM wage_calculations
		WHERE id = $1
	`

	c, err := scanCalculation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.Calculation{}, wage.ErrCalculationNotFound
		}
		return wage.Calculation{}, fmt.Errorf("failed to get wage calculation: %w", err)
	}

	return c, nil
}

func (r *wageCalculationRepository) Approve(ctx context.Context, id string, approverID string) (wage.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wage_calculations
		SET status = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + calculationColumns

	c, err := scanCalculation(q.QueryRow(ctx, query, id, wage.StatusApproved, approverID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.Calculation{}, wage.ErrCalculationNotFound
		}
		return wage.Calculation{}, fmt.Errorf("failed to approve wage calculation: %w", err)
	}

	return c, nil
}
