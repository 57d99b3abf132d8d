package repository

import (
	"context"

	"finance-guide/domain"
)

type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Session, bool, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}
