package format

import (
	"fmt"
	"strings"
)

// Links builds deep links into a forum board from a base URL.
type Links struct {
	Base string
}

// NewLinks trims a trailing slash so callers can pass either form.
func NewLinks(base string) Links {
	return Links{Base: strings.TrimRight(base, "/")}
}

func (l Links) ForumLink(forumID int) string {
	return fmt.Sprintf("%s/viewforum?f=%d", l.Base, forumID)
}

func (l Links) TopicLink(topicID int) string {
	return fmt.Sprintf("%s/viewtopic?t=%d", l.Base, topicID)
}

// PostLink anchors directly to a post within its topic.
func (l Links) PostLink(topicID, postID int) string {
	return fmt.Sprintf("%s/viewtopic?t=%d&p=%d#p%d", l.Base, topicID, postID, postID)
}

func (l Links) UserLink(userID int) string {
	return fmt.Sprintf("%s/memberlist?mode=viewprofile&u=%d", l.Base, userID)
}
