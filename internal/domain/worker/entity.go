package worker

import "time"

// Worker - a service recipient whose hours and wages are tracked.
type Worker struct {
	ID             string
	OrganizationID string
	FullName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
