package audit

import "context"

// Entry - one audit record. Every mutating wage operation emits
// exactly one of these; emission is a post-condition, not logging.
type Entry struct {
	ActorID        string
	OrganizationID string
	Action         string
	Entity         string
	EntityID       string
	Detail         map[string]interface{}
}

type Sink interface {
	Record(ctx context.Context, entry Entry) error
}
