// Package notifier routes forum events to chat webhooks. The Manager is
// the surface a host wires its event hooks into; each Handle method
// runs the full gate, compose and deliver pipeline for one event.
package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/forumkit/go-discord-notify/pkg/compose"
	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/events"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/directory"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
	"github.com/forumkit/go-discord-notify/pkg/policy"
	"github.com/forumkit/go-discord-notify/pkg/webhook"
)

var (
	ErrNoSettings = errors.New("notifier: settings source is required")
	ErrNoResolver = errors.New("notifier: destination resolver is required")
	ErrNoComposer = errors.New("notifier: composer is required")
	ErrNoClient   = errors.New("notifier: webhook client is required")
)

// Manager receives forum events and dispatches webhook notifications.
// Handle methods never return errors: event hooks run inside host
// request handling, and a broken webhook must not break the forum.
// Failures are logged instead.
type Manager struct {
	settings  config.Source
	resolver  *policy.Resolver
	composer  *compose.Composer
	client    *webhook.Client
	directory directory.Directory
	logger    logger.Logger
}

// Dependencies holds the collaborators a Manager needs. Directory is
// optional; without it, events that arrive with ids only keep their
// placeholder text.
type Dependencies struct {
	Settings  config.Source
	Resolver  *policy.Resolver
	Composer  *compose.Composer
	Client    *webhook.Client
	Directory directory.Directory
	Logger    logger.Logger
}

// New constructs a Manager.
func New(deps Dependencies) (*Manager, error) {
	if deps.Settings == nil {
		return nil, ErrNoSettings
	}
	if deps.Resolver == nil {
		return nil, ErrNoResolver
	}
	if deps.Composer == nil {
		return nil, ErrNoComposer
	}
	if deps.Client == nil {
		return nil, ErrNoClient
	}
	if deps.Directory == nil {
		deps.Directory = &directory.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Manager{
		settings:  deps.Settings,
		resolver:  deps.Resolver,
		composer:  deps.Composer,
		client:    deps.Client,
		directory: deps.Directory,
		logger:    deps.Logger,
	}, nil
}

func (m *Manager) HandlePostCreated(ctx context.Context, ev events.PostCreated) {
	set, ok := m.gate(ctx, events.TypePostCreate, ev.Visible)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.PostCreated(set, ev))
}

func (m *Manager) HandlePostUpdated(ctx context.Context, ev events.PostUpdated) {
	set, ok := m.gate(ctx, events.TypePostUpdate, ev.Visible)
	if !ok {
		return
	}
	if ev.Editor.Name == "" && ev.Editor.ID != 0 {
		if name, err := m.directory.UserName(ctx, ev.Editor.ID); err == nil {
			ev.Editor.Name = name
		}
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.PostUpdated(set, ev))
}

func (m *Manager) HandlePostDeleted(ctx context.Context, ev events.PostDeleted) {
	set, ok := m.gate(ctx, events.TypePostDelete, ev.Visible)
	if !ok {
		return
	}
	if ev.Poster.Name == "" && ev.Poster.ID != 0 {
		if name, err := m.directory.UserName(ctx, ev.Poster.ID); err == nil {
			ev.Poster.Name = name
		}
	}
	if ev.ForumName == "" {
		if name, err := m.directory.ForumName(ctx, ev.ForumID); err == nil {
			ev.ForumName = name
		}
	}
	if ev.TopicTitle == "" {
		if title, err := m.directory.TopicTitle(ctx, ev.TopicID); err == nil {
			ev.TopicTitle = title
		}
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.PostDeleted(set, ev))
}

func (m *Manager) HandlePostLocked(ctx context.Context, ev events.PostLocked) {
	set, ok := m.gate(ctx, events.TypePostLock, ev.Visible)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.PostLocked(set, ev))
}

func (m *Manager) HandlePostUnlocked(ctx context.Context, ev events.PostUnlocked) {
	set, ok := m.gate(ctx, events.TypePostUnlock, ev.Visible)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.PostUnlocked(set, ev))
}

func (m *Manager) HandlePostApproved(ctx context.Context, ev events.PostApproved) {
	set, ok := m.gate(ctx, events.TypePostApprove, true)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.PostApproved(set, ev))
}

func (m *Manager) HandleTopicCreated(ctx context.Context, ev events.TopicCreated) {
	set, ok := m.gate(ctx, events.TypeTopicCreate, ev.Visible)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.TopicCreated(set, ev))
}

func (m *Manager) HandleTopicUpdated(ctx context.Context, ev events.TopicUpdated) {
	set, ok := m.gate(ctx, events.TypeTopicUpdate, ev.Visible)
	if !ok {
		return
	}
	if ev.Editor.Name == "" && ev.Editor.ID != 0 {
		if name, err := m.directory.UserName(ctx, ev.Editor.ID); err == nil {
			ev.Editor.Name = name
		}
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.TopicUpdated(set, ev))
}

// HandleTopicsDeleted notifies single-topic deletions. Bulk deletions
// are suppressed: a mass prune would flood the channel with messages
// nobody reads.
func (m *Manager) HandleTopicsDeleted(ctx context.Context, ev events.TopicsDeleted) {
	set, ok := m.gate(ctx, events.TypeTopicDelete, true)
	if !ok {
		return
	}
	if len(ev.TopicIDs) != 1 {
		m.logger.Debug("bulk topic deletion suppressed",
			logger.Field{Key: "topics", Value: len(ev.TopicIDs)},
		)
		return
	}

	topicID := ev.TopicIDs[0]
	resolved := compose.TopicDeleted{TopicID: topicID}
	details, err := m.directory.TopicDetails(ctx, topicID)
	if err != nil {
		m.logger.Warn("topic details unavailable",
			logger.Field{Key: "topic_id", Value: topicID},
			logger.Field{Key: "error", Value: err},
		)
	} else {
		if !details.Visible {
			return
		}
		resolved = compose.TopicDeleted{
			Poster:     events.Actor{ID: details.PosterID, Name: details.PosterName},
			ForumID:    details.ForumID,
			ForumName:  details.ForumName,
			TopicID:    topicID,
			TopicTitle: details.TopicTitle,
			PostCount:  details.PostCount,
		}
	}
	m.deliverToForum(ctx, set, resolved.ForumID, m.composer.TopicDeleted(set, resolved))
}

func (m *Manager) HandleTopicLocked(ctx context.Context, ev events.TopicLocked) {
	set, ok := m.gate(ctx, events.TypeTopicLock, ev.Visible)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.TopicLocked(set, ev))
}

func (m *Manager) HandleTopicUnlocked(ctx context.Context, ev events.TopicUnlocked) {
	set, ok := m.gate(ctx, events.TypeTopicUnlock, ev.Visible)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.TopicUnlocked(set, ev))
}

func (m *Manager) HandleTopicApproved(ctx context.Context, ev events.TopicApproved) {
	set, ok := m.gate(ctx, events.TypeTopicApprove, true)
	if !ok {
		return
	}
	m.deliverToForum(ctx, set, ev.ForumID, m.composer.TopicApproved(set, ev))
}

// HandleUserCreated notifies new accounts. User events are not scoped to
// a forum, so they always go to the default destination.
func (m *Manager) HandleUserCreated(ctx context.Context, ev events.UserCreated) {
	set, ok := m.gate(ctx, events.TypeUserCreate, true)
	if !ok {
		return
	}
	m.deliverToDefault(ctx, set, m.composer.UserCreated(set, ev))
}

func (m *Manager) HandleUsersDeleted(ctx context.Context, ev events.UsersDeleted) {
	set, ok := m.gate(ctx, events.TypeUserDelete, true)
	if !ok {
		return
	}
	if len(ev.Users) == 0 {
		return
	}
	m.deliverToDefault(ctx, set, m.composer.UsersDeleted(set, ev))
}

// gate loads settings and applies the master switch, the per-type toggle
// and the visibility check shared by every handler.
func (m *Manager) gate(ctx context.Context, t events.Type, visible bool) (config.Settings, bool) {
	set, err := m.settings.Snapshot(ctx)
	if err != nil {
		m.logger.Error("settings unavailable", logger.Field{Key: "error", Value: err})
		return config.Settings{}, false
	}
	if !policy.Eligible(set, t) {
		return config.Settings{}, false
	}
	if !visible {
		return config.Settings{}, false
	}
	return set, true
}

func (m *Manager) deliverToForum(ctx context.Context, set config.Settings, forumID int, msg webhook.Message) {
	url, err := m.resolver.ForumDestination(ctx, forumID)
	if err != nil {
		m.logger.Error("destination lookup failed",
			logger.Field{Key: "forum_id", Value: forumID},
			logger.Field{Key: "error", Value: err},
		)
		return
	}
	m.deliver(ctx, set, url, msg)
}

func (m *Manager) deliverToDefault(ctx context.Context, set config.Settings, msg webhook.Message) {
	url, err := m.resolver.DefaultDestination(ctx, set)
	if err != nil {
		m.logger.Error("destination lookup failed", logger.Field{Key: "error", Value: err})
		return
	}
	m.deliver(ctx, set, url, msg)
}

// deliver posts the message, treating an empty URL as intentional
// silence: the event had no route.
func (m *Manager) deliver(ctx context.Context, set config.Settings, url string, msg webhook.Message) {
	if url == "" || msg.Body == "" {
		return
	}
	connect := time.Duration(set.ConnectTimeout) * time.Second
	request := time.Duration(set.RequestTimeout) * time.Second

	if err := m.client.Send(ctx, url, msg, connect, request); err != nil {
		m.logger.Error("webhook delivery failed",
			logger.Field{Key: "url", Value: webhook.MaskURL(url)},
			logger.Field{Key: "error", Value: err},
		)
	}
}
