package store

import (
	"context"
	"errors"
	"time"

	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = errors.New("store: not found")

// ListOptions capture pagination and filtering knobs common to repositories.
type ListOptions struct {
	Limit              int
	Offset             int
	Since              time.Time
	Until              time.Time
	IncludeSoftDeleted bool
}

// ListResult bundles records and totals.
type ListResult[T any] struct {
	Items []T
	Total int
}

// Repository defines base CRUD helpers reused by entity-specific interfaces.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, opts ListOptions) (ListResult[T], error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// WebhookDestinationRepository persists named webhook endpoints.
type WebhookDestinationRepository interface {
	Repository[domain.WebhookDestination]
	GetByAlias(ctx context.Context, alias string) (*domain.WebhookDestination, error)
	DeleteByAlias(ctx context.Context, alias string) error
}

// ForumBindingRepository persists forum to alias routes. DeleteByAlias
// supports the cascade that runs when a destination is removed.
type ForumBindingRepository interface {
	Repository[domain.ForumBinding]
	GetByForum(ctx context.Context, forumID int) (*domain.ForumBinding, error)
	DeleteByForum(ctx context.Context, forumID int) error
	DeleteByAlias(ctx context.Context, alias string) error
}
