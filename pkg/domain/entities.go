package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordMeta captures identifiers and audit fields shared across entities.
type RecordMeta struct {
	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt time.Time `bun:",soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// EnsureID assigns a UUID when the struct is about to be persisted.
func (m *RecordMeta) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// WebhookDestination stores a named chat webhook endpoint. The alias
// decouples forum bindings and the default-destination setting from the
// raw URL, which embeds the webhook secret. URL holds either the plain
// URL or a sealed form when the host configured at-rest sealing.
type WebhookDestination struct {
	bun.BaseModel `bun:"table:chat_webhooks"`
	RecordMeta

	Alias string `bun:",unique,nullzero,notnull"`
	URL   string `bun:",nullzero,notnull"`
}

// ForumBinding routes events raised inside a forum to a webhook alias.
// A forum maps to zero or one destination.
type ForumBinding struct {
	bun.BaseModel `bun:"table:chat_forum_bindings"`
	RecordMeta

	ForumID int    `bun:",unique,notnull"`
	Alias   string `bun:",nullzero,notnull"`
}
