// Package policy decides whether a forum event results in a delivery
// and, if so, where it goes.
package policy

import (
	"context"
	"errors"
	"strings"

	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/events"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/store"
	"github.com/forumkit/go-discord-notify/pkg/secrets"
)

// Eligible reports whether notifications for the given event type should
// be produced at all. The master switch gates everything; each type then
// has its own toggle.
func Eligible(set config.Settings, t events.Type) bool {
	return set.Enabled && set.TypeEnabled(t)
}

// Resolver maps forum events to webhook URLs through the destination
// registry and per-forum bindings.
type Resolver struct {
	destinations store.WebhookDestinationRepository
	bindings     store.ForumBindingRepository
	sealer       *secrets.Sealer
	logger       logger.Logger
}

// Dependencies holds the collaborators a Resolver needs.
type Dependencies struct {
	Destinations store.WebhookDestinationRepository
	Bindings     store.ForumBindingRepository
	// Sealer is optional; when set, stored URLs are decrypted on the
	// way out.
	Sealer *secrets.Sealer
	Logger logger.Logger
}

var (
	ErrNoDestinations = errors.New("policy: destinations repository is required")
	ErrNoBindings     = errors.New("policy: bindings repository is required")
)

// New constructs a Resolver.
func New(deps Dependencies) (*Resolver, error) {
	if deps.Destinations == nil {
		return nil, ErrNoDestinations
	}
	if deps.Bindings == nil {
		return nil, ErrNoBindings
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Resolver{
		destinations: deps.Destinations,
		bindings:     deps.Bindings,
		sealer:       deps.Sealer,
		logger:       deps.Logger,
	}, nil
}

// ForumDestination resolves the webhook URL for a forum through its
// binding. The default webhook only serves events with no forum, so an
// unbound forum, or a binding whose webhook was deleted, returns "" with
// no error, which the caller treats as silent suppression.
func (r *Resolver) ForumDestination(ctx context.Context, forumID int) (string, error) {
	binding, err := r.bindings.GetByForum(ctx, forumID)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	url, err := r.aliasURL(ctx, binding.Alias)
	if errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("forum binding references missing webhook",
			logger.Field{Key: "forum_id", Value: forumID},
			logger.Field{Key: "alias", Value: binding.Alias},
		)
		return "", nil
	}
	return url, err
}

// DefaultDestination resolves the board-wide default webhook, or ""
// when none is configured.
func (r *Resolver) DefaultDestination(ctx context.Context, set config.Settings) (string, error) {
	alias := strings.TrimSpace(set.DefaultWebhook)
	if alias == "" {
		return "", nil
	}
	url, err := r.aliasURL(ctx, alias)
	if errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("default webhook alias not registered",
			logger.Field{Key: "alias", Value: alias},
		)
		return "", nil
	}
	return url, err
}

// AliasDestination resolves a webhook URL by alias, for test sends and
// admin checks. Unlike the routing helpers it surfaces missing aliases
// as store.ErrNotFound.
func (r *Resolver) AliasDestination(ctx context.Context, alias string) (string, error) {
	return r.aliasURL(ctx, alias)
}

func (r *Resolver) aliasURL(ctx context.Context, alias string) (string, error) {
	dest, err := r.destinations.GetByAlias(ctx, alias)
	if err != nil {
		return "", err
	}
	if r.sealer == nil {
		return dest.URL, nil
	}
	return r.sealer.Open(dest.URL)
}
