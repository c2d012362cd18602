package storage

import (
	"context"
	"database/sql"

	bunrepo "github.com/forumkit/go-discord-notify/internal/storage/bun"
	"github.com/forumkit/go-discord-notify/internal/storage/memory"
	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/uptrace/bun"
)

// Providers exposes the repositories the notifier and admin services need.
type Providers struct {
	Destinations store.WebhookDestinationRepository
	Bindings     store.ForumBindingRepository
	Transaction  store.TransactionManager
}

// NewMemoryProviders returns repositories backed by in-memory maps.
func NewMemoryProviders() Providers {
	return Providers{
		Destinations: memory.NewDestinationRepository(),
		Bindings:     memory.NewBindingRepository(),
		Transaction:  &store.NopTransactionManager{},
	}
}

// NewBunProviders wires Bun-backed repositories. The caller creates the
// *bun.DB instance (potentially via go-persistence-bun) and manages its
// lifecycle.
func NewBunProviders(db *bun.DB) Providers {
	if db == nil {
		panic("storage: bun DB is required")
	}

	// Register models so go-persistence-bun migrations can pick them up.
	persistence.RegisterModel(
		(*domain.WebhookDestination)(nil),
		(*domain.ForumBinding)(nil),
	)

	return Providers{
		Destinations: bunrepo.NewDestinationRepository(db),
		Bindings:     bunrepo.NewBindingRepository(db),
		Transaction:  &bunTxManager{db: db},
	}
}

type bunTxManager struct {
	db *bun.DB
}

func (m *bunTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx)
	})
}
