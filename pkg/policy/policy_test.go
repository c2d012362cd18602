package policy

import (
	"bytes"
	"context"
	"testing"

	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/events"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	"github.com/forumkit/go-discord-notify/pkg/secrets"
	"github.com/google/uuid"
)

type fakeDestinations struct {
	byAlias map[string]*domain.WebhookDestination
}

func (f *fakeDestinations) Create(ctx context.Context, record *domain.WebhookDestination) error {
	f.byAlias[record.Alias] = record
	return nil
}
func (f *fakeDestinations) Update(ctx context.Context, record *domain.WebhookDestination) error {
	f.byAlias[record.Alias] = record
	return nil
}
func (f *fakeDestinations) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error) {
	return nil, store.ErrNotFound
}
func (f *fakeDestinations) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.WebhookDestination], error) {
	return store.ListResult[domain.WebhookDestination]{}, nil
}
func (f *fakeDestinations) SoftDelete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeDestinations) GetByAlias(ctx context.Context, alias string) (*domain.WebhookDestination, error) {
	dest, ok := f.byAlias[alias]
	if !ok {
		return nil, store.ErrNotFound
	}
	return dest, nil
}
func (f *fakeDestinations) DeleteByAlias(ctx context.Context, alias string) error {
	delete(f.byAlias, alias)
	return nil
}

type fakeBindings struct {
	byForum map[int]*domain.ForumBinding
}

func (f *fakeBindings) Create(ctx context.Context, record *domain.ForumBinding) error {
	f.byForum[record.ForumID] = record
	return nil
}
func (f *fakeBindings) Update(ctx context.Context, record *domain.ForumBinding) error {
	f.byForum[record.ForumID] = record
	return nil
}
func (f *fakeBindings) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForumBinding, error) {
	return nil, store.ErrNotFound
}
func (f *fakeBindings) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.ForumBinding], error) {
	return store.ListResult[domain.ForumBinding]{}, nil
}
func (f *fakeBindings) SoftDelete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeBindings) GetByForum(ctx context.Context, forumID int) (*domain.ForumBinding, error) {
	binding, ok := f.byForum[forumID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return binding, nil
}
func (f *fakeBindings) DeleteByForum(ctx context.Context, forumID int) error {
	delete(f.byForum, forumID)
	return nil
}
func (f *fakeBindings) DeleteByAlias(ctx context.Context, alias string) error {
	for id, binding := range f.byForum {
		if binding.Alias == alias {
			delete(f.byForum, id)
		}
	}
	return nil
}

func newResolver(t *testing.T, sealer *secrets.Sealer) (*Resolver, *fakeDestinations, *fakeBindings) {
	t.Helper()
	dests := &fakeDestinations{byAlias: map[string]*domain.WebhookDestination{}}
	binds := &fakeBindings{byForum: map[int]*domain.ForumBinding{}}
	r, err := New(Dependencies{Destinations: dests, Bindings: binds, Sealer: sealer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, dests, binds
}

func TestEligible(t *testing.T) {
	set := config.Defaults()
	if Eligible(set, events.TypePostCreate) {
		t.Error("master switch off should suppress everything")
	}
	set.Enabled = true
	if !Eligible(set, events.TypePostCreate) {
		t.Error("enabled type should be eligible")
	}
	set.Types[events.TypePostCreate] = false
	if Eligible(set, events.TypePostCreate) {
		t.Error("disabled type should be suppressed")
	}
}

func TestForumDestinationUsesBinding(t *testing.T) {
	r, dests, binds := newResolver(t, nil)
	dests.byAlias["announce"] = &domain.WebhookDestination{Alias: "announce", URL: "https://chat.example/a"}
	dests.byAlias["general"] = &domain.WebhookDestination{Alias: "general", URL: "https://chat.example/g"}
	binds.byForum[7] = &domain.ForumBinding{ForumID: 7, Alias: "announce"}

	url, err := r.ForumDestination(context.Background(), 7)
	if err != nil {
		t.Fatalf("ForumDestination: %v", err)
	}
	if url != "https://chat.example/a" {
		t.Errorf("url = %q, want the bound destination", url)
	}
}

func TestForumDestinationUnboundIsSilent(t *testing.T) {
	r, dests, _ := newResolver(t, nil)
	dests.byAlias["general"] = &domain.WebhookDestination{Alias: "general", URL: "https://chat.example/g"}

	url, err := r.ForumDestination(context.Background(), 99)
	if err != nil {
		t.Fatalf("ForumDestination: %v", err)
	}
	if url != "" {
		t.Errorf("url = %q, want empty: the default alias only serves forum-less events", url)
	}
}

func TestForumDestinationStaleBindingIsSilent(t *testing.T) {
	r, dests, binds := newResolver(t, nil)
	dests.byAlias["general"] = &domain.WebhookDestination{Alias: "general", URL: "https://chat.example/g"}
	binds.byForum[3] = &domain.ForumBinding{ForumID: 3, Alias: "gone"}

	url, err := r.ForumDestination(context.Background(), 3)
	if err != nil {
		t.Fatalf("ForumDestination: %v", err)
	}
	if url != "" {
		t.Errorf("url = %q, want empty for a binding whose webhook was deleted", url)
	}
}

func TestDefaultDestinationMissingAliasIsSilent(t *testing.T) {
	r, _, _ := newResolver(t, nil)
	set := config.Defaults()
	set.DefaultWebhook = "nope"

	url, err := r.DefaultDestination(context.Background(), set)
	if err != nil {
		t.Fatalf("DefaultDestination: %v", err)
	}
	if url != "" {
		t.Errorf("url = %q, want empty", url)
	}
}

func TestResolverOpensSealedURLs(t *testing.T) {
	sealer, err := secrets.NewSealer(bytes.Repeat([]byte{7}, 32))
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	sealed, err := sealer.Seal("https://chat.example/secret")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	r, dests, _ := newResolver(t, sealer)
	dests.byAlias["vault"] = &domain.WebhookDestination{Alias: "vault", URL: sealed}

	url, err := r.AliasDestination(context.Background(), "vault")
	if err != nil {
		t.Fatalf("AliasDestination: %v", err)
	}
	if url != "https://chat.example/secret" {
		t.Errorf("url = %q", url)
	}
}
