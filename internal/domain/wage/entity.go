package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum for a wage calculation
type Status string

const (
	StatusCalculated Status = "calculated"
	StatusApproved   Status = "approved"
)

// Calculation - one worker's wage figure for one (year, month).
// Created by the monthly run; only status/approved_by change afterwards.
type Calculation struct {
	ID             string
	OrganizationID string
	WorkerID       string
	Year           int
	Month          int
	TotalHours     decimal.Decimal
	HourlyRate     decimal.Decimal
	GrossAmount    int64
	Deductions     int64
	NetAmount      int64
	Status         Status
	ApprovedBy     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RateSchedule - effective-dated hourly rate entry. Ranges are not
// guaranteed non-overlapping; resolution picks the latest effective_from.
type RateSchedule struct {
	ID             string
	OrganizationID string
	WorkerID       string
	HourlyRate     decimal.Decimal
	EffectiveFrom  time.Time
	EffectiveTo    *time.Time
	CreatedAt      time.Time
}
