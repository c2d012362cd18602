package memory

import (
	"context"
	"strings"

	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	"github.com/google/uuid"
)

// BindingRepository keeps forum bindings in process memory.
type BindingRepository struct {
	base baseMemoryRepo[domain.ForumBinding]
}

func NewBindingRepository() *BindingRepository {
	return &BindingRepository{
		base: newBaseMemoryRepo(func(b *domain.ForumBinding) *domain.RecordMeta { return &b.RecordMeta }),
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
	record, ok := r.base.findActive(func(b *domain.ForumBinding) bool {
		return b.ForumID == forumID
	})
	if !ok {
		return nil, store.ErrNotFound
	}
	return record, nil
}

func (r *BindingRepository) DeleteByForum(ctx context.Context, forumID int) error {
	if r.base.deleteActive(func(b *domain.ForumBinding) bool {
		return b.ForumID == forumID
	}) == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteByAlias removes every binding routed at the alias. Removing an
// alias nobody is bound to is not an error; it runs as part of the
// destination delete cascade.
func (r *BindingRepository) DeleteByAlias(ctx context.Context, alias string) error {
	r.base.deleteActive(func(b *domain.ForumBinding) bool {
		return strings.EqualFold(b.Alias, alias)
	})
	return nil
}
