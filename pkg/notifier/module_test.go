package notifier

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/forumkit/go-discord-notify/pkg/commands"
	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/events"
	"github.com/forumkit/go-discord-notify/pkg/secrets"
	"github.com/forumkit/go-discord-notify/pkg/storage"
)

func newModule(t *testing.T, opts ModuleOptions) *Module {
	t.Helper()
	if opts.Settings == nil {
		opts.Settings = config.NewStaticSource(enabledSettings())
	}
	if opts.Storage.Destinations == nil {
		opts.Storage = storage.NewMemoryProviders()
	}
	module, err := NewModule(opts)
	if err != nil {
		t.Fatalf("NewModule: %v", err)
	}
	return module
}

func TestNewModuleRequiresSettings(t *testing.T) {
	_, err := NewModule(ModuleOptions{Storage: storage.NewMemoryProviders()})
	if !errors.Is(err, ErrNoSettings) {
		t.Errorf("err = %v, want %v", err, ErrNoSettings)
	}
}

func TestNewModuleRejectsShortSealKey(t *testing.T) {
	_, err := NewModule(ModuleOptions{
		Settings: config.NewStaticSource(enabledSettings()),
		Storage:  storage.NewMemoryProviders(),
		SealKey:  []byte("short"),
	})
	if !errors.Is(err, secrets.ErrInvalidKey) {
		t.Errorf("err = %v, want %v", err, secrets.ErrInvalidKey)
	}
}

func TestModuleAccessors(t *testing.T) {
	module := newModule(t, ModuleOptions{})

	if module.Manager() == nil {
		t.Error("Manager() = nil")
	}
	if module.Admin() == nil {
		t.Error("Admin() = nil")
	}
	if module.Commands() == nil {
		t.Error("Commands() = nil")
	}
	if module.Settings() == nil {
		t.Error("Settings() = nil")
	}
	if got := len(module.Commands().Commanders()); got != 5 {
		t.Errorf("Commanders() = %d handlers, want 5", got)
	}

	var nilModule *Module
	if nilModule.Manager() != nil || nilModule.Commands().Commanders() != nil {
		t.Error("nil module accessors should return nil")
	}
}

func TestModuleEndToEnd(t *testing.T) {
	server := newCapturingServer(t)
	source := config.NewStaticSource(enabledSettings())
	module := newModule(t, ModuleOptions{
		Settings:   source,
		Storage:    storage.NewMemoryProviders(),
		HTTPClient: server.srv.Client(),
	})
	ctx := context.Background()

	if err := module.Commands().UpsertWebhook.Execute(ctx, commands.UpsertWebhook{
		Alias: "announce",
		URL:   server.srv.URL + "/hook",
	}); err != nil {
		t.Fatalf("UpsertWebhook: %v", err)
	}
	if err := module.Commands().BindForum.Execute(ctx, commands.BindForum{
		ForumID: 7,
		Alias:   "announce",
	}); err != nil {
		t.Fatalf("BindForum: %v", err)
	}

	module.Manager().HandlePostCreated(ctx, postCreated())

	if server.count() != 1 {
		t.Fatalf("deliveries = %d, want 1", server.count())
	}
	description := server.lastEmbed(t)["description"].(string)
	if !strings.Contains(description, "My Topic") {
		t.Errorf("description = %q", description)
	}

	if err := module.Commands().UnbindForum.Execute(ctx, commands.UnbindForum{ForumID: 7}); err != nil {
		t.Fatalf("UnbindForum: %v", err)
	}
	if err := module.Commands().DeleteWebhook.Execute(ctx, commands.DeleteWebhook{Alias: "announce"}); err != nil {
		t.Fatalf("DeleteWebhook: %v", err)
	}

	module.Manager().HandlePostCreated(ctx, postCreated())
	if server.count() != 1 {
		t.Errorf("deliveries = %d after teardown, want 1", server.count())
	}
}

func TestModuleSealsStoredURLs(t *testing.T) {
	server := newCapturingServer(t)
	key := bytes.Repeat([]byte{0x42}, 32)
	providers := storage.NewMemoryProviders()
	module := newModule(t, ModuleOptions{
		Storage:    providers,
		SealKey:    key,
		HTTPClient: server.srv.Client(),
	})
	ctx := context.Background()

	if err := module.Admin().UpsertWebhook(ctx, "general", server.srv.URL+"/hook"); err != nil {
		t.Fatalf("UpsertWebhook: %v", err)
	}

	stored, err := providers.Destinations.GetByAlias(ctx, "general")
	if err != nil {
		t.Fatalf("GetByAlias: %v", err)
	}
	if !secrets.IsSealed(stored.URL) {
		t.Errorf("stored URL should be sealed, got %q", stored.URL)
	}

	module.Manager().HandleUserCreated(ctx, events.UserCreated{
		User: events.Actor{ID: 11, Name: "Frank"},
	})
	if server.count() != 1 {
		t.Errorf("deliveries = %d, want 1", server.count())
	}
}
