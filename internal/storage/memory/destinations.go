package memory

import (
	"context"
	"strings"

	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	"github.com/google/uuid"
)

// DestinationRepository keeps webhook destinations in process memory.
// Useful for tests and hosts that configure destinations statically.
type DestinationRepository struct {
	base baseMemoryRepo[domain.WebhookDestination]
}

func NewDestinationRepository() *DestinationRepository {
	return &DestinationRepository{
		base: newBaseMemoryRepo(func(d *domain.WebhookDestination) *domain.RecordMeta { return &d.RecordMeta }),
	}
}

func (r *DestinationRepository) Create(ctx context.Context, dest *domain.WebhookDestination) error {
	return r.base.create(ctx, dest)
}

func (r *DestinationRepository) Update(ctx context.Context, dest *domain.WebhookDestination) error {
	return r.base.update(ctx, dest)
}

func (r *DestinationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error) {
	return r.base.getByID(ctx, id, false)
}

func (r *DestinationRepository) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.WebhookDestination], error) {
	return r.base.list(ctx, opts)
}

func (r *DestinationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.base.softDelete(ctx, id)
}

func (r *DestinationRepository) GetByAlias(ctx context.Context, alias string) (*domain.WebhookDestination, error) {
	record, ok := r.base.findActive(func(d *domain.WebhookDestination) bool {
		return strings.EqualFold(d.Alias, alias)
	})
	if !ok {
		return nil, store.ErrNotFound
	}
	return record, nil
}

func (r *DestinationRepository) DeleteByAlias(ctx context.Context, alias string) error {
	if r.base.deleteActive(func(d *domain.WebhookDestination) bool {
		return strings.EqualFold(d.Alias, alias)
	}) == 0 {
		return store.ErrNotFound
	}
	return nil
}
