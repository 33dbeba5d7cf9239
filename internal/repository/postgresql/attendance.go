package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/wagedesk/internal/domain/attendance"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.IntervalRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByClockIn(ctx context.Context, organizationID string, start, end time.Time) ([]attendance.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, worker_id, clock_in_at, clock_out_at
		FROM attendance_intervals
		WHERE organization_id = $1 AND clock_in_at >= $2 AND clock_in_at < $3
		ORDER BY worker_id, clock_in_at
	`

	rows, err := q.Query(ctx, query, organizationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance intervals: %w", err)
	}
	defer rows.Close()

	var intervals []attendance.Interval
	for rows.Next() {
		var iv attendance.Interval
		if err := rows.Scan(&iv.ID, &iv.OrganizationID, &iv.WorkerID, &iv.ClockIn, &iv.ClockOut); err != nil {
			return nil, fmt.Errorf("failed to scan attendance interval: %w", err)
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}
