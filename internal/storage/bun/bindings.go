package bunrepo

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BindingRepository persists forum bindings through bun.
type BindingRepository struct {
	base baseRepository[domain.ForumBinding]
}

func NewBindingRepository(db *bun.DB) *BindingRepository {
	handlers := repository.ModelHandlers[*domain.ForumBinding]{
		NewRecord: func() *domain.ForumBinding { return &domain.ForumBinding{} },
		GetID:     func(b *domain.ForumBinding) uuid.UUID { return b.ID },
		SetID: func(b *domain.ForumBinding, id uuid.UUID) {
			b.ID = id
		},
		GetIdentifier:      func() string { return "forum_id" },
		GetIdentifierValue: func(b *domain.ForumBinding) string { return strconv.Itoa(b.ForumID) },
	}
	return &BindingRepository{
		base: newBaseRepository[domain.ForumBinding](db, handlers, func(b *domain.ForumBinding) *domain.RecordMeta { return &b.RecordMeta }),
	}
}

func (r *BindingRepository) Create(ctx context.Context, binding *domain.ForumBinding) error {
	return r.base.create(ctx, binding)
}

func (r *BindingRepository) Update(ctx context.Context, binding *domain.ForumBinding) error {
	return r.base.update(ctx, binding)
}

func (r *BindingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForumBinding, error) {
	return r.base.getByID(ctx, id, false)
}

func (r *BindingRepository) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.ForumBinding], error) {
	return r.base.list(ctx, opts)
}

func (r *BindingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.base.softDelete(ctx, id)
}

func (r *BindingRepository) GetByForum(ctx context.Context, forumID int) (*domain.ForumBinding, error) {
	return r.base.getOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("forum_id = ?", forumID)
	})
}

func (r *BindingRepository) DeleteByForum(ctx context.Context, forumID int) error {
	record, err := r.GetByForum(ctx, forumID)
	if err != nil {
		return err
	}
	record.DeletedAt = time.Now().UTC()
	_, err = r.base.repo.Update(ctx, record)
	return mapError(err)
}

// DeleteByAlias soft deletes every live binding routed at the alias. It
// runs as part of the destination delete cascade, so an alias with no
// bindings is fine.
func (r *BindingRepository) DeleteByAlias(ctx context.Context, alias string) error {
	_, err := r.base.db.NewUpdate().
		Model((*domain.ForumBinding)(nil)).
		Set("deleted_at = ?", time.Now().UTC()).
		Where("LOWER(alias) = ?", strings.ToLower(alias)).
		Where("deleted_at IS NULL").
		Exec(ctx)
	return mapError(err)
}
