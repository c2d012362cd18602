package events

// Type identifies one notification kind that admins can toggle on its own.
type Type string

const (
	TypePostCreate   Type = "post_create"
	TypePostUpdate   Type = "post_update"
	TypePostDelete   Type = "post_delete"
	TypePostLock     Type = "post_lock"
	TypePostUnlock   Type = "post_unlock"
	TypePostApprove  Type = "post_approve"
	TypeTopicCreate  Type = "topic_create"
	TypeTopicUpdate  Type = "topic_update"
	TypeTopicDelete  Type = "topic_delete"
	TypeTopicLock    Type = "topic_lock"
	TypeTopicUnlock  Type = "topic_unlock"
	TypeTopicApprove Type = "topic_approve"
	TypeUserCreate   Type = "user_create"
	TypeUserDelete   Type = "user_delete"
)

// All enumerates every notification type, in a stable order.
func All() []Type {
	return []Type{
		TypePostCreate, TypePostUpdate, TypePostDelete,
		TypePostLock, TypePostUnlock, TypePostApprove,
		TypeTopicCreate, TypeTopicUpdate, TypeTopicDelete,
		TypeTopicLock, TypeTopicUnlock, TypeTopicApprove,
		TypeUserCreate, TypeUserDelete,
	}
}

// Actor identifies a forum user referenced by an event. Name may be empty
// when the host payload did not carry it; consumers substitute a
// placeholder or resolve it through the directory.
type Actor struct {
	ID   int
	Name string
}

// PostCreated fires after a reply is submitted to an existing topic.
type PostCreated struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostID     int
	Content    string
	Visible    bool
}

// PostUpdated fires after an existing post is edited. Editor may differ
// from Poster when a moderator made the edit.
type PostUpdated struct {
	Poster     Actor
	Editor     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostID     int
	EditReason string
	Visible    bool
}

// PostDeleted fires after a post is removed. The host payload carries ids
// only; names are resolved through the directory by the router.
type PostDeleted struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostID     int
	Reason     string
	Visible    bool
}

// PostLocked fires when a moderator locks a single post.
type PostLocked struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostID     int
	Visible    bool
}

// PostUnlocked fires when a moderator unlocks a single post.
type PostUnlocked struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostID     int
	Visible    bool
}

// PostApproved fires when a moderator approves a queued post.
type PostApproved struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	PostID     int
	Content    string
}

// TopicCreated fires after the first post of a new topic is submitted.
type TopicCreated struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	Content    string
	Visible    bool
}

// TopicUpdated fires after the first post of a topic is edited.
type TopicUpdated struct {
	Poster     Actor
	Editor     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	EditReason string
	Visible    bool
}

// TopicsDeleted fires before one or more topics are removed. Only the ids
// survive deletion, so the router resolves the remaining details through
// the directory. Deletions spanning more than one topic are suppressed.
type TopicsDeleted struct {
	TopicIDs []int
}

// TopicLocked fires when a moderator locks a topic. Poster is the user
// who started the topic.
type TopicLocked struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	Visible    bool
}

// TopicUnlocked fires when a moderator unlocks a topic.
type TopicUnlocked struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	Visible    bool
}

// TopicApproved fires when a moderator approves a queued topic.
type TopicApproved struct {
	Poster     Actor
	ForumID    int
	ForumName  string
	TopicID    int
	TopicTitle string
	Content    string
}

// UserCreated fires once a normal user account becomes active.
type UserCreated struct {
	User Actor
}

// UsersDeleted fires after one or more user accounts are removed. Users
// keeps the order the host supplied it in.
type UsersDeleted struct {
	Users []Actor
}
