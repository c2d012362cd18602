package directory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the host cannot resolve an entity.
var ErrNotFound = errors.New("directory: not found")

// TopicDetails bundles the fields needed to describe a topic that is
// about to disappear (the deletion event only carries its id).
type TopicDetails struct {
	ForumID    int
	ForumName  string
	TopicTitle string
	PosterID   int
	PosterName string
	PostCount  int
	Visible    bool
}

// Directory is the read-only data access contract the host application
// implements. The notifier uses it to backfill names the event payloads
// do not carry. Implementations must be safe for concurrent reads.
type Directory interface {
	ForumName(ctx context.Context, forumID int) (string, error)
	TopicTitle(ctx context.Context, topicID int) (string, error)
	UserName(ctx context.Context, userID int) (string, error)
	TopicDetails(ctx context.Context, topicID int) (TopicDetails, error)
}

// Nop resolves nothing. Useful for tests and hosts that always ship
// complete event payloads.
type Nop struct{}

var _ Directory = (*Nop)(nil)

func (n *Nop) ForumName(ctx context.Context, forumID int) (string, error) {
	return "", ErrNotFound
}

func (n *Nop) TopicTitle(ctx context.Context, topicID int) (string, error) {
	return "", ErrNotFound
}

func (n *Nop) UserName(ctx context.Context, userID int) (string, error) {
	return "", ErrNotFound
}

func (n *Nop) TopicDetails(ctx context.Context, topicID int) (TopicDetails, error) {
	return TopicDetails{}, ErrNotFound
}
