package entities

import (
	"strings"
	"time"
)

// Session identifies the user acting on a request. It is resolved once at the
// HTTP edge and passed explicitly to the operations that need an author.
type Session struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

func (s Session) Valid() bool {
	return strings.TrimSpace(s.UserID) != ""
}

// Note is a deal activity entry.
type Note struct {
	ID          string    `json:"id"`
	DealID      string    `json:"deal_id"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Body        string    `json:"body"`
	Attachments []string  `json:"attachments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
