package wage

import (
	"context"
	"time"
)

type CalculationRepository interface {
	Create(ctx context.Context, calc Calculation) (Calculation, error)
	GetByID(ctx context.Context, id string) (Calculation, error)
	Approve(ctx context.Context, id string, approverID string) (Calculation, error)
}

type Service interface {
	ListTemplates(ctx context.Context) (TemplatesResponse, error)
	CalculateMonthly(ctx context.Context, req CalculateMonthlyRequest) (CalculateMonthlyResponse, error)
	Approve(ctx context.Context, id string) (CalculationResponse, error)
	BuildSlipView(ctx context.Context, id string) (SlipView, error)
}

type RateRepository interface {
	// FindEffective returns the rate entry applicable to [start, end):
	// effective_from <= end and (effective_to is null or effective_to > start),
	// latest effective_from first. Returns ErrNoEffectiveRate when none match.
	FindEffective(ctx context.Context, organizationID, workerID string, start, end time.Time) (RateSchedule, error)
}
