// Package commands exposes go-command compatible handlers so hosts can
// drive the admin surface from their own command bus, CLI or HTTP layer.
package commands

import (
	"context"
	"errors"

	"github.com/forumkit/go-discord-notify/pkg/admin"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
	command "github.com/goliatone/go-command"
)

// UpsertWebhook registers or replaces a webhook destination.
type UpsertWebhook struct {
	Alias string `json:"alias"`
	URL   string `json:"url"`
}

// DeleteWebhook removes a destination and cascades over its bindings.
type DeleteWebhook struct {
	Alias string `json:"alias"`
}

// BindForum routes a forum to a destination alias.
type BindForum struct {
	ForumID int    `json:"forum_id"`
	Alias   string `json:"alias"`
}

// UnbindForum returns a forum to the default destination.
type UnbindForum struct {
	ForumID int `json:"forum_id"`
}

// SendTest posts a test message to a destination.
type SendTest struct {
	Alias string `json:"alias"`
	Body  string `json:"body"`
}

// Registry exposes go-command compatible handlers backed by the admin
// service.
type Registry struct {
	UpsertWebhook command.Commander[UpsertWebhook]
	DeleteWebhook command.Commander[DeleteWebhook]
	BindForum     command.Commander[BindForum]
	UnbindForum   command.Commander[UnbindForum]
	SendTest      command.Commander[SendTest]
}

// Dependencies wires the admin service into the command registry.
type Dependencies struct {
	Admin  *admin.Service
	Logger logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	if deps.Admin == nil {
		return nil, errors.New("commands: admin service is required")
	}
	return &Registry{
		UpsertWebhook: upsertWebhookCommand{svc: deps.Admin},
		DeleteWebhook: deleteWebhookCommand{svc: deps.Admin},
		BindForum:     bindForumCommand{svc: deps.Admin},
		UnbindForum:   unbindForumCommand{svc: deps.Admin},
		SendTest:      sendTestCommand{svc: deps.Admin},
	}, nil
}

// Commanders returns every handler so callers can register them with
// go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.UpsertWebhook,
		r.DeleteWebhook,
		r.BindForum,
		r.UnbindForum,
		r.SendTest,
	}
}

type upsertWebhookCommand struct {
	svc *admin.Service
}

func (c upsertWebhookCommand) Execute(ctx context.Context, msg UpsertWebhook) error {
	return c.svc.UpsertWebhook(ctx, msg.Alias, msg.URL)
}

type deleteWebhookCommand struct {
	svc *admin.Service
}

func (c deleteWebhookCommand) Execute(ctx context.Context, msg DeleteWebhook) error {
	return c.svc.DeleteWebhook(ctx, msg.Alias)
}

type bindForumCommand struct {
	svc *admin.Service
}

func (c bindForumCommand) Execute(ctx context.Context, msg BindForum) error {
	return c.svc.SetForumBinding(ctx, msg.ForumID, msg.Alias)
}

type unbindForumCommand struct {
	svc *admin.Service
}

func (c unbindForumCommand) Execute(ctx context.Context, msg UnbindForum) error {
	return c.svc.ClearForumBinding(ctx, msg.ForumID)
}

type sendTestCommand struct {
	svc *admin.Service
}

func (c sendTestCommand) Execute(ctx context.Context, msg SendTest) error {
	return c.svc.SendTest(ctx, msg.Alias, msg.Body)
}
