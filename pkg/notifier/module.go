package notifier

import (
	"net/http"

	"github.com/forumkit/go-discord-notify/pkg/admin"
	"github.com/forumkit/go-discord-notify/pkg/commands"
	"github.com/forumkit/go-discord-notify/pkg/compose"
	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/directory"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
	"github.com/forumkit/go-discord-notify/pkg/policy"
	"github.com/forumkit/go-discord-notify/pkg/secrets"
	"github.com/forumkit/go-discord-notify/pkg/storage"
	"github.com/forumkit/go-discord-notify/pkg/webhook"
	i18n "github.com/goliatone/go-i18n"
)

// ModuleOptions configure the notifier module facade. Settings and
// Storage are required; everything else has a sensible default.
type ModuleOptions struct {
	Settings  config.Store
	Storage   storage.Providers
	Directory directory.Directory
	Logger    logger.Logger
	// Translator overrides the built-in catalogs; hosts use it to add
	// locales or reword messages.
	Translator i18n.Translator
	// SealKey enables at-rest sealing of webhook URLs. Must be 32 bytes.
	SealKey []byte
	// HTTPClient overrides per-call timeout wiring, mainly for tests.
	HTTPClient *http.Client
}

// Module bundles the assembled services behind high-level accessors.
type Module struct {
	manager  *Manager
	admin    *admin.Service
	commands *commands.Registry
	settings config.Store
}

// NewModule assembles the resolver, composer, webhook client, manager,
// admin service and command registry.
func NewModule(opts ModuleOptions) (*Module, error) {
	if opts.Settings == nil {
		return nil, ErrNoSettings
	}
	if opts.Logger == nil {
		opts.Logger = &logger.Nop{}
	}

	translator := opts.Translator
	if translator == nil {
		var err error
		translator, err = i18n.NewSimpleTranslator(
			i18n.NewStaticStore(compose.Translations()),
			i18n.WithTranslatorDefaultLocale("en"),
		)
		if err != nil {
			return nil, err
		}
	}

	var sealer *secrets.Sealer
	if len(opts.SealKey) > 0 {
		var err error
		sealer, err = secrets.NewSealer(opts.SealKey)
		if err != nil {
			return nil, err
		}
	}

	composer, err := compose.New(compose.Dependencies{
		Translator: translator,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	resolver, err := policy.New(policy.Dependencies{
		Destinations: opts.Storage.Destinations,
		Bindings:     opts.Storage.Bindings,
		Sealer:       sealer,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	clientOpts := []webhook.Option{webhook.WithLogger(opts.Logger)}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, webhook.WithHTTPClient(opts.HTTPClient))
	}
	client := webhook.New(clientOpts...)

	manager, err := New(Dependencies{
		Settings:  opts.Settings,
		Resolver:  resolver,
		Composer:  composer,
		Client:    client,
		Directory: opts.Directory,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	adminSvc, err := admin.New(admin.Dependencies{
		Destinations: opts.Storage.Destinations,
		Bindings:     opts.Storage.Bindings,
		Transaction:  opts.Storage.Transaction,
		Settings:     opts.Settings,
		Resolver:     resolver,
		Client:       client,
		Sealer:       sealer,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	registry, err := commands.New(commands.Dependencies{
		Admin:  adminSvc,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		manager:  manager,
		admin:    adminSvc,
		commands: registry,
		settings: opts.Settings,
	}, nil
}

// Manager returns the event dispatch surface.
func (m *Module) Manager() *Manager {
	if m == nil {
		return nil
	}
	return m.manager
}

// Admin returns the management service.
func (m *Module) Admin() *admin.Service {
	if m == nil {
		return nil
	}
	return m.admin
}

// Commands returns the go-command registry.
func (m *Module) Commands() *commands.Registry {
	if m == nil {
		return nil
	}
	return m.commands
}

// Settings returns the settings store the module was built with.
func (m *Module) Settings() config.Store {
	if m == nil {
		return nil
	}
	return m.settings
}
