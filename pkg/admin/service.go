// Package admin exposes the management operations a host control panel
// builds on: registering webhooks, binding forums and test sends.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/domain"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	"github.com/forumkit/go-discord-notify/pkg/policy"
	"github.com/forumkit/go-discord-notify/pkg/secrets"
	"github.com/forumkit/go-discord-notify/pkg/webhook"
)

var (
	ErrNoDestinations = errors.New("admin: destinations repository is required")
	ErrNoBindings     = errors.New("admin: bindings repository is required")
	ErrNoClient       = errors.New("admin: webhook client is required")
	ErrNoSettings     = errors.New("admin: settings store is required")

	ErrInvalidAlias  = errors.New("admin: alias must not be empty")
	ErrInvalidURL    = errors.New("admin: webhook url must be absolute http(s)")
	ErrUnknownAlias  = errors.New("admin: alias is not registered")
	ErrUnknownForum  = errors.New("admin: forum has no binding")
	ErrEmptyTestBody = errors.New("admin: test message body must not be empty")
)

// Service implements the management surface.
type Service struct {
	destinations store.WebhookDestinationRepository
	bindings     store.ForumBindingRepository
	tx           store.TransactionManager
	settings     config.Store
	resolver     *policy.Resolver
	client       *webhook.Client
	sealer       *secrets.Sealer
	logger       logger.Logger
}

// Dependencies holds the collaborators a Service needs. Sealer is
// optional; when set, URLs are sealed before they reach storage.
type Dependencies struct {
	Destinations store.WebhookDestinationRepository
	Bindings     store.ForumBindingRepository
	Transaction  store.TransactionManager
	Settings     config.Store
	Resolver     *policy.Resolver
	Client       *webhook.Client
	Sealer       *secrets.Sealer
	Logger       logger.Logger
}

// New constructs the admin service.
func New(deps Dependencies) (*Service, error) {
	if deps.Destinations == nil {
		return nil, ErrNoDestinations
	}
	if deps.Bindings == nil {
		return nil, ErrNoBindings
	}
	if deps.Client == nil {
		return nil, ErrNoClient
	}
	if deps.Settings == nil {
		return nil, ErrNoSettings
	}
	if deps.Transaction == nil {
		deps.Transaction = &store.NopTransactionManager{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	svc := &Service{
		destinations: deps.Destinations,
		bindings:     deps.Bindings,
		tx:           deps.Transaction,
		settings:     deps.Settings,
		resolver:     deps.Resolver,
		client:       deps.Client,
		sealer:       deps.Sealer,
		logger:       deps.Logger,
	}
	if svc.resolver == nil {
		resolver, err := policy.New(policy.Dependencies{
			Destinations: deps.Destinations,
			Bindings:     deps.Bindings,
			Sealer:       deps.Sealer,
			Logger:       deps.Logger,
		})
		if err != nil {
			return nil, err
		}
		svc.resolver = resolver
	}
	return svc, nil
}

// UpsertWebhook registers a destination or replaces the URL of an
// existing one.
func (s *Service) UpsertWebhook(ctx context.Context, alias, rawURL string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return ErrInvalidAlias
	}
	if err := validateWebhookURL(rawURL); err != nil {
		return err
	}

	stored := rawURL
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(rawURL)
		if err != nil {
			return fmt.Errorf("admin: seal url: %w", err)
		}
		stored = sealed
	}

	existing, err := s.destinations.GetByAlias(ctx, alias)
	switch {
	case err == nil:
		existing.URL = stored
		if err := s.destinations.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, store.ErrNotFound):
		dest := &domain.WebhookDestination{Alias: alias, URL: stored}
		if err := s.destinations.Create(ctx, dest); err != nil {
			return err
		}
	default:
		return err
	}

	s.logger.Info("webhook destination saved",
		logger.Field{Key: "alias", Value: alias},
		logger.Field{Key: "url", Value: webhook.MaskURL(rawURL)},
	)
	return nil
}

// DeleteWebhook removes a destination together with every forum binding
// that routes to it. If the alias was the board default it is cleared
// from settings, so nothing keeps referencing a dead destination.
func (s *Service) DeleteWebhook(ctx context.Context, alias string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return ErrInvalidAlias
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.destinations.DeleteByAlias(ctx, alias); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUnknownAlias
			}
			return err
		}
		return s.bindings.DeleteByAlias(ctx, alias)
	})
	if err != nil {
		return err
	}

	set, err := s.settings.Snapshot(ctx)
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(set.DefaultWebhook), alias) {
		set.DefaultWebhook = ""
		if err := s.settings.Save(ctx, set); err != nil {
			return err
		}
	}

	s.logger.Info("webhook destination removed", logger.Field{Key: "alias", Value: alias})
	return nil
}

// SetForumBinding routes a forum's events to the named destination. The
// alias must already be registered.
func (s *Service) SetForumBinding(ctx context.Context, forumID int, alias string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return ErrInvalidAlias
	}
	if _, err := s.destinations.GetByAlias(ctx, alias); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownAlias
		}
		return err
	}

	existing, err := s.bindings.GetByForum(ctx, forumID)
	switch {
	case err == nil:
		existing.Alias = alias
		return s.bindings.Update(ctx, existing)
	case errors.Is(err, store.ErrNotFound):
		return s.bindings.Create(ctx, &domain.ForumBinding{ForumID: forumID, Alias: alias})
	default:
		return err
	}
}

// ClearForumBinding removes a forum's route, returning its events to the
// default destination.
func (s *Service) ClearForumBinding(ctx context.Context, forumID int) error {
	if err := s.bindings.DeleteByForum(ctx, forumID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownForum
		}
		return err
	}
	return nil
}

// ListWebhooks returns every registered destination.
func (s *Service) ListWebhooks(ctx context.Context) ([]domain.WebhookDestination, error) {
	result, err := s.destinations.List(ctx, store.ListOptions{})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// ListBindings returns every forum route.
func (s *Service) ListBindings(ctx context.Context) ([]domain.ForumBinding, error) {
	result, err := s.bindings.List(ctx, store.ListOptions{})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// SendTest posts a host-supplied message to the named destination so an
// admin can verify the wiring. It runs even while the master switch is
// off, and unlike event dispatch it reports failures to the caller.
func (s *Service) SendTest(ctx context.Context, alias, body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrEmptyTestBody
	}
	targetURL, err := s.resolver.AliasDestination(ctx, strings.TrimSpace(alias))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownAlias
		}
		return err
	}

	set, err := s.settings.Snapshot(ctx)
	if err != nil {
		return err
	}
	connect := time.Duration(set.ConnectTimeout) * time.Second
	request := time.Duration(set.RequestTimeout) * time.Second

	return s.client.ForceSend(ctx, targetURL, webhook.Message{Body: body}, connect, request)
}

func validateWebhookURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ErrInvalidURL
	}
	if (parsed.Scheme != "https" && parsed.Scheme != "http") || parsed.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
