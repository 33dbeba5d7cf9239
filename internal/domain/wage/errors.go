package wage

import "errors"

// Wage domain errors
var (
	ErrCalculationNotFound   = errors.New("wage calculation not found")
	ErrNoEffectiveRate       = errors.New("no effective rate for worker")
	ErrOrganizationForbidden = errors.New("wage calculation belongs to another organization")
	ErrSlipForbidden         = errors.New("not allowed to access this wage slip")
	ErrMissingIdentity       = errors.New("caller identity missing from context")
)
