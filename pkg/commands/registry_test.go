package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/forumkit/go-discord-notify/pkg/admin"
	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/storage"
	"github.com/forumkit/go-discord-notify/pkg/webhook"
)

func newRegistry(t *testing.T) (*Registry, *admin.Service) {
	t.Helper()
	providers := storage.NewMemoryProviders()
	svc, err := admin.New(admin.Dependencies{
		Destinations: providers.Destinations,
		Bindings:     providers.Bindings,
		Transaction:  providers.Transaction,
		Settings:     config.NewStaticSource(config.Defaults()),
		Client:       webhook.New(),
	})
	if err != nil {
		t.Fatalf("admin.New: %v", err)
	}
	registry, err := New(Dependencies{Admin: svc})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return registry, svc
}

func TestNewRequiresAdmin(t *testing.T) {
	if _, err := New(Dependencies{}); err == nil {
		t.Fatal("expected error without admin service")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	registry, svc := newRegistry(t)
	ctx := context.Background()

	if err := registry.UpsertWebhook.Execute(ctx, UpsertWebhook{Alias: "announce", URL: "https://chat.example/a"}); err != nil {
		t.Fatalf("UpsertWebhook: %v", err)
	}
	if err := registry.BindForum.Execute(ctx, BindForum{ForumID: 7, Alias: "announce"}); err != nil {
		t.Fatalf("BindForum: %v", err)
	}

	bindings, err := svc.ListBindings(ctx)
	if err != nil {
		t.Fatalf("ListBindings: %v", err)
	}
	if len(bindings) != 1 || bindings[0].ForumID != 7 {
		t.Errorf("bindings = %+v", bindings)
	}

	if err := registry.UnbindForum.Execute(ctx, UnbindForum{ForumID: 7}); err != nil {
		t.Fatalf("UnbindForum: %v", err)
	}
	if err := registry.DeleteWebhook.Execute(ctx, DeleteWebhook{Alias: "announce"}); err != nil {
		t.Fatalf("DeleteWebhook: %v", err)
	}

	hooks, err := svc.ListWebhooks(ctx)
	if err != nil {
		t.Fatalf("ListWebhooks: %v", err)
	}
	if len(hooks) != 0 {
		t.Errorf("webhooks = %+v", hooks)
	}
}

func TestRegistryPropagatesErrors(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()

	err := registry.SendTest.Execute(ctx, SendTest{Alias: "missing", Body: "ping"})
	if !errors.Is(err, admin.ErrUnknownAlias) {
		t.Errorf("SendTest: %v", err)
	}
	err = registry.BindForum.Execute(ctx, BindForum{ForumID: 1, Alias: "missing"})
	if !errors.Is(err, admin.ErrUnknownAlias) {
		t.Errorf("BindForum: %v", err)
	}
}
