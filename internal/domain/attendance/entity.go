package attendance

import "time"

// Interval - one clock-in/clock-out pair. Owned by the attendance
// subsystem; this engine only reads them. A nil ClockOut means the
// interval is still open and contributes zero hours.
type Interval struct {
	ID             string
	OrganizationID string
	WorkerID       string
	ClockIn        time.Time
	ClockOut       *time.Time
}
