package attendance

import (
	"context"
	"time"
)

type IntervalRepository interface {
	// ListByClockIn returns every interval whose clock_in falls in
	// [start, end), ordered by worker, for one organization.
	ListByClockIn(ctx context.Context, organizationID string, start, end time.Time) ([]Interval, error)
}
