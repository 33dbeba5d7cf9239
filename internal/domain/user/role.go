package user

// Role enum for callers of the wage engine
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	// RoleUser is a worker viewing their own slips.
	RoleUser Role = "user"
)
