package worker

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Worker, error)
}
