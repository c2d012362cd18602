package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
)

func TestDestinationRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository()

	dest := &domain.WebhookDestination{Alias: "announce", URL: "https://chat.example/a"}
	if err := repo.Create(ctx, dest); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dest.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("Create should assign an id")
	}

	got, err := repo.GetByAlias(ctx, "ANNOUNCE")
	if err != nil {
		t.Fatalf("GetByAlias: %v", err)
	}
	if got.URL != "https://chat.example/a" {
		t.Errorf("URL = %q", got.URL)
	}

	got.URL = "https://chat.example/b"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	byID, err := repo.GetByID(ctx, dest.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.URL != "https://chat.example/b" {
		t.Errorf("updated URL = %q", byID.URL)
	}

	if err := repo.DeleteByAlias(ctx, "announce"); err != nil {
		t.Fatalf("DeleteByAlias: %v", err)
	}
	if _, err := repo.GetByAlias(ctx, "announce"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("deleted alias should report not found, got %v", err)
	}
	if err := repo.DeleteByAlias(ctx, "announce"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}

func TestDestinationRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository()

	for _, alias := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, &domain.WebhookDestination{Alias: alias, URL: "https://chat.example/" + alias}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.DeleteByAlias(ctx, "b"); err != nil {
		t.Fatalf("DeleteByAlias: %v", err)
	}

	result, err := repo.List(ctx, store.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}

	all, err := repo.List(ctx, store.ListOptions{IncludeSoftDeleted: true})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("Total with deleted = %d, want 3", all.Total)
	}
}

func TestBindingRepositoryRoutes(t *testing.T) {
	ctx := context.Background()
	repo := NewBindingRepository()

	if err := repo.Create(ctx, &domain.ForumBinding{ForumID: 7, Alias: "announce"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, &domain.ForumBinding{ForumID: 8, Alias: "general"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByForum(ctx, 7)
	if err != nil {
		t.Fatalf("GetByForum: %v", err)
	}
	if got.Alias != "announce" {
		t.Errorf("alias = %q", got.Alias)
	}

	if _, err := repo.GetByForum(ctx, 99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unbound forum should report not found, got %v", err)
	}

	if err := repo.DeleteByForum(ctx, 7); err != nil {
		t.Fatalf("DeleteByForum: %v", err)
	}
	if _, err := repo.GetByForum(ctx, 7); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("deleted binding should report not found, got %v", err)
	}
}

func TestBindingRepositoryDeleteByAliasCascade(t *testing.T) {
	ctx := context.Background()
	repo := NewBindingRepository()

	for forumID := 1; forumID <= 3; forumID++ {
		if err := repo.Create(ctx, &domain.ForumBinding{ForumID: forumID, Alias: "announce"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, &domain.ForumBinding{ForumID: 4, Alias: "general"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.DeleteByAlias(ctx, "announce"); err != nil {
		t.Fatalf("DeleteByAlias: %v", err)
	}
	for forumID := 1; forumID <= 3; forumID++ {
		if _, err := repo.GetByForum(ctx, forumID); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("forum %d binding should be gone, got %v", forumID, err)
		}
	}
	if _, err := repo.GetByForum(ctx, 4); err != nil {
		t.Errorf("unrelated binding removed: %v", err)
	}

	// cascade over an unused alias is a no-op, not an error
	if err := repo.DeleteByAlias(ctx, "missing"); err != nil {
		t.Errorf("DeleteByAlias on unused alias: %v", err)
	}
}
