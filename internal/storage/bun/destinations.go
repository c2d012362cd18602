package bunrepo

import (
	"context"
	"strings"
	"time"

	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DestinationRepository persists webhook destinations through bun.
type DestinationRepository struct {
	base baseRepository[domain.WebhookDestination]
}

func NewDestinationRepository(db *bun.DB) *DestinationRepository {
	handlers := repository.ModelHandlers[*domain.WebhookDestination]{
		NewRecord: func() *domain.WebhookDestination { return &domain.WebhookDestination{} },
		GetID:     func(d *domain.WebhookDestination) uuid.UUID { return d.ID },
		SetID: func(d *domain.WebhookDestination, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier:      func() string { return "alias" },
		GetIdentifierValue: func(d *domain.WebhookDestination) string { return d.Alias },
	}
	return &DestinationRepository{
		base: newBaseRepository[domain.WebhookDestination](db, handlers, func(d *domain.WebhookDestination) *domain.RecordMeta { return &d.RecordMeta }),
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
	return r.base.getOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("LOWER(alias) = ?", strings.ToLower(alias))
	})
}

func (r *DestinationRepository) DeleteByAlias(ctx context.Context, alias string) error {
	record, err := r.GetByAlias(ctx, alias)
	if err != nil {
		return err
	}
	record.DeletedAt = time.Now().UTC()
	_, err = r.base.repo.Update(ctx, record)
	return mapError(err)
}
