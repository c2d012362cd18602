// Package compose renders forum events into chat messages using the
// configured locale catalog.
package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forumkit/go-discord-notify/pkg/config"
	"github.com/forumkit/go-discord-notify/pkg/events"
	"github.com/forumkit/go-discord-notify/pkg/format"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
	"github.com/forumkit/go-discord-notify/pkg/webhook"
	i18n "github.com/goliatone/go-i18n"
)

// Embed accent colors, one per event family.
const (
	ColorCreate   = 0x2DAF32
	ColorUpdate   = 0x36A1E8
	ColorDelete   = 0xE83535
	ColorModerate = 0xD66539
	ColorUser     = 0xD635E8
)

const (
	emojiCreate = "\U0001F4C4"
	emojiUpdate = "\U0001F4DD"
	emojiDelete = "❌"
	emojiLock   = "\U0001F512"
	emojiUnlock = "\U0001F513"
	emojiUser   = "\U0001F465"
)

const fallbackLocale = "en"

// ErrNoTranslator is returned by New when the translator is missing.
var ErrNoTranslator = errors.New("compose: translator is required")

// Composer renders event payloads into webhook messages.
type Composer struct {
	translator i18n.Translator
	logger     logger.Logger
}

// Dependencies holds the collaborators a Composer needs.
type Dependencies struct {
	Translator i18n.Translator
	Logger     logger.Logger
}

// New constructs a Composer.
func New(deps Dependencies) (*Composer, error) {
	if deps.Translator == nil {
		return nil, ErrNoTranslator
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Composer{translator: deps.Translator, logger: deps.Logger}, nil
}

// TopicDeleted carries the details of a single-topic deletion after the
// router has resolved them. Deletions only carry ids at the source, so
// any field may be missing and gets a placeholder.
type TopicDeleted struct {
	Poster     events.Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostCount  int
}

func (c *Composer) PostCreated(set config.Settings, ev events.PostCreated) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	body := c.t(set, "notify.post.create",
		emojiCreate,
		format.MakeLink(links.UserLink(ev.Poster.ID), ev.Poster.Name),
		format.MakeLink(links.PostLink(ev.TopicID, ev.PostID), c.t(set, "notify.word.post")),
		format.MakeLink(links.TopicLink(ev.TopicID), ev.TopicTitle),
		format.MakeLink(links.ForumLink(ev.ForumID), ev.ForumName),
	)
	return webhook.Message{
		Color:  ColorCreate,
		Body:   body,
		Footer: c.preview(set, ev.Content),
	}
}

func (c *Composer) PostUpdated(set config.Settings, ev events.PostUpdated) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	postLink := format.MakeLink(links.PostLink(ev.TopicID, ev.PostID), c.t(set, "notify.word.post"))
	topicLink := format.MakeLink(links.TopicLink(ev.TopicID), ev.TopicTitle)
	forumLink := format.MakeLink(links.ForumLink(ev.ForumID), ev.ForumName)
	posterLink := format.MakeLink(links.UserLink(ev.Poster.ID), ev.Poster.Name)

	var body string
	if ev.Editor.ID == ev.Poster.ID {
		body = c.t(set, "notify.post.update.self",
			emojiUpdate, posterLink, postLink, topicLink, forumLink)
	} else {
		editorLink := format.MakeLink(links.UserLink(ev.Editor.ID), ev.Editor.Name)
		body = c.t(set, "notify.post.update.other",
			emojiUpdate, editorLink, postLink, posterLink, topicLink, forumLink)
	}
	return webhook.Message{
		Color:  ColorUpdate,
		Body:   body,
		Footer: c.reason(set, ev.EditReason),
	}
}

func (c *Composer) PostDeleted(set config.Settings, ev events.PostDeleted) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	body := c.t(set, "notify.post.delete",
		emojiDelete,
		format.MakeLink(links.UserLink(ev.Poster.ID), c.orPlaceholder(set, ev.Poster.Name, "placeholder.user")),
		format.MakeLink(links.TopicLink(ev.TopicID), c.orPlaceholder(set, ev.TopicTitle, "placeholder.topic")),
		format.MakeLink(links.ForumLink(ev.ForumID), c.orPlaceholder(set, ev.ForumName, "placeholder.forum")),
	)
	return webhook.Message{
		Color:  ColorDelete,
		Body:   body,
		Footer: c.reason(set, ev.Reason),
	}
}

func (c *Composer) PostLocked(set config.Settings, ev events.PostLocked) webhook.Message {
	return webhook.Message{
		Color: ColorModerate,
		Body:  c.postModeration(set, "notify.post.lock", emojiLock, ev.Poster, ev.ForumID, ev.ForumName, ev.TopicID, ev.TopicTitle, ev.PostID),
	}
}

func (c *Composer) PostUnlocked(set config.Settings, ev events.PostUnlocked) webhook.Message {
	return webhook.Message{
		Color: ColorModerate,
		Body:  c.postModeration(set, "notify.post.unlock", emojiUnlock, ev.Poster, ev.ForumID, ev.ForumName, ev.TopicID, ev.TopicTitle, ev.PostID),
	}
}

func (c *Composer) PostApproved(set config.Settings, ev events.PostApproved) webhook.Message {
	return webhook.Message{
		Color:  ColorCreate,
		Body:   c.postModeration(set, "notify.post.approve", emojiCreate, ev.Poster, ev.ForumID, ev.ForumName, ev.TopicID, ev.TopicTitle, ev.PostID),
		Footer: c.preview(set, ev.Content),
	}
}

func (c *Composer) TopicCreated(set config.Settings, ev events.TopicCreated) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	body := c.t(set, "notify.topic.create",
		emojiCreate,
		format.MakeLink(links.UserLink(ev.Poster.ID), ev.Poster.Name),
		format.MakeLink(links.TopicLink(ev.TopicID), ev.TopicTitle),
		format.MakeLink(links.ForumLink(ev.ForumID), ev.ForumName),
	)
	return webhook.Message{
		Color:  ColorCreate,
		Body:   body,
		Footer: c.preview(set, ev.Content),
	}
}

func (c *Composer) TopicUpdated(set config.Settings, ev events.TopicUpdated) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	topicLink := format.MakeLink(links.TopicLink(ev.TopicID), ev.TopicTitle)
	forumLink := format.MakeLink(links.ForumLink(ev.ForumID), ev.ForumName)
	posterLink := format.MakeLink(links.UserLink(ev.Poster.ID), ev.Poster.Name)

	var body string
	if ev.Editor.ID == ev.Poster.ID {
		body = c.t(set, "notify.topic.update.self",
			emojiUpdate, posterLink, topicLink, forumLink)
	} else {
		editorLink := format.MakeLink(links.UserLink(ev.Editor.ID), ev.Editor.Name)
		body = c.t(set, "notify.topic.update.other",
			emojiUpdate, editorLink, topicLink, posterLink, forumLink)
	}
	return webhook.Message{
		Color:  ColorUpdate,
		Body:   body,
		Footer: c.reason(set, ev.EditReason),
	}
}

// TopicDeleted renders a single-topic deletion. The title is plain text
// rather than a link because the topic no longer exists.
func (c *Composer) TopicDeleted(set config.Settings, ev TopicDeleted) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	body := c.t(set, "notify.topic.delete",
		emojiDelete,
		format.MakeLink(links.UserLink(ev.Poster.ID), c.orPlaceholder(set, ev.Poster.Name, "placeholder.user")),
		format.LinkSafeText(c.orPlaceholder(set, ev.TopicTitle, "placeholder.topic")),
		ev.PostCount,
		format.MakeLink(links.ForumLink(ev.ForumID), c.orPlaceholder(set, ev.ForumName, "placeholder.forum")),
	)
	return webhook.Message{Color: ColorDelete, Body: body}
}

func (c *Composer) TopicLocked(set config.Settings, ev events.TopicLocked) webhook.Message {
	return webhook.Message{
		Color: ColorModerate,
		Body:  c.topicModeration(set, "notify.topic.lock", emojiLock, ev.Poster, ev.ForumID, ev.ForumName, ev.TopicID, ev.TopicTitle),
	}
}

func (c *Composer) TopicUnlocked(set config.Settings, ev events.TopicUnlocked) webhook.Message {
	return webhook.Message{
		Color: ColorModerate,
		Body:  c.topicModeration(set, "notify.topic.unlock", emojiUnlock, ev.Poster, ev.ForumID, ev.ForumName, ev.TopicID, ev.TopicTitle),
	}
}

func (c *Composer) TopicApproved(set config.Settings, ev events.TopicApproved) webhook.Message {
	return webhook.Message{
		Color:  ColorCreate,
		Body:   c.topicModeration(set, "notify.topic.approve", emojiCreate, ev.Poster, ev.ForumID, ev.ForumName, ev.TopicID, ev.TopicTitle),
		Footer: c.preview(set, ev.Content),
	}
}

func (c *Composer) UserCreated(set config.Settings, ev events.UserCreated) webhook.Message {
	links := format.NewLinks(set.BoardURL)
	body := c.t(set, "notify.user.create",
		emojiUser,
		format.MakeLink(links.UserLink(ev.User.ID), ev.User.Name),
	)
	return webhook.Message{Color: ColorUser, Body: body}
}

// UsersDeleted renders account removals. Accounts are gone, so names
// appear as plain text. The phrasing shifts with how many were removed;
// past three names the rest collapse into a count.
func (c *Composer) UsersDeleted(set config.Settings, ev events.UsersDeleted) webhook.Message {
	switch len(ev.Users) {
	case 0:
		return webhook.Message{}
	case 1:
		body := c.t(set, "notify.user.delete", emojiUser, ev.Users[0].Name)
		return webhook.Message{Color: ColorUser, Body: body}
	}

	and := c.t(set, "notify.word.and")
	comma := c.t(set, "notify.word.conj")

	var list string
	switch n := len(ev.Users); n {
	case 2:
		list = ev.Users[0].Name + " " + and + " " + ev.Users[1].Name
	case 3:
		list = ev.Users[0].Name + comma + " " + ev.Users[1].Name + comma + " " + and + " " + ev.Users[2].Name
	default:
		rest := n - 3
		qualifier := c.t(set, "notify.word.others")
		if rest == 1 {
			qualifier = c.t(set, "notify.word.other")
		}
		list = ev.Users[0].Name + comma + " " + ev.Users[1].Name + comma + " " + ev.Users[2].Name +
			comma + " " + and + " " + fmt.Sprintf("%d %s", rest, qualifier)
	}

	body := c.t(set, "notify.user.delete.multi", emojiUser, list)
	return webhook.Message{Color: ColorUser, Body: body}
}

func (c *Composer) postModeration(set config.Settings, key, emoji string, poster events.Actor, forumID int, forumName string, topicID int, topicTitle string, postID int) string {
	links := format.NewLinks(set.BoardURL)
	return c.t(set, key,
		emoji,
		format.MakeLink(links.PostLink(topicID, postID), c.t(set, "notify.word.post")),
		format.MakeLink(links.UserLink(poster.ID), poster.Name),
		format.MakeLink(links.TopicLink(topicID), topicTitle),
		format.MakeLink(links.ForumLink(forumID), forumName),
	)
}

func (c *Composer) topicModeration(set config.Settings, key, emoji string, poster events.Actor, forumID int, forumName string, topicID int, topicTitle string) string {
	links := format.NewLinks(set.BoardURL)
	return c.t(set, key,
		emoji,
		format.MakeLink(links.TopicLink(topicID), topicTitle),
		format.MakeLink(links.ForumLink(forumID), forumName),
		format.MakeLink(links.UserLink(poster.ID), poster.Name),
	)
}

func (c *Composer) preview(set config.Settings, content string) string {
	return format.BuildPreview(content, set.PreviewLength, c.t(set, "notify.preview.prefix"))
}

func (c *Composer) reason(set config.Settings, reason string) string {
	if strings.TrimSpace(reason) == "" {
		return ""
	}
	return format.BuildPreview(reason, set.PreviewLength, c.t(set, "notify.reason.prefix"))
}

func (c *Composer) orPlaceholder(set config.Settings, value, key string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return c.t(set, key)
}

// t translates key for the configured locale, falling back to the
// built-in English catalog on a miss.
func (c *Composer) t(set config.Settings, key string, args ...any) string {
	locale := set.DefaultLocale
	if locale == "" {
		locale = fallbackLocale
	}
	out, err := c.translator.Translate(locale, key, args...)
	if err == nil {
		return out
	}
	if locale != fallbackLocale {
		if out, err2 := c.translator.Translate(fallbackLocale, key, args...); err2 == nil {
			return out
		}
	}
	c.logger.Warn("missing translation",
		logger.Field{Key: "locale", Value: locale},
		logger.Field{Key: "key", Value: key},
	)
	return key
}
