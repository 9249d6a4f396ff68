// Package store keeps the chat list and per-chat message caches
// consistent with the backend while giving the UI immediate feedback.
// The backend stays the authority for persisted state; this store is the
// authority for the in-memory copy the UI renders from.
package store

import (
	"strings"
	"time"

	"github.com/finchat/finchat/internal/api"
)

// Message roles.
const (
	RoleUser = api.RoleUser
	RoleBot  = api.RoleBot
)

const (
	// DefaultTitle is the title of a chat before its first message.
	DefaultTitle = "New Chat"

	// ErrorReply is appended as a bot message when a send fails.
	ErrorReply = "Sorry, I encountered an error. Please try again."

	maxTitleLength = 50
)

// Chat is the in-memory copy of a chat record.
type Chat struct {
	ID        string
	Title     string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is the in-memory copy of a message record.
type Message struct {
	ID        string
	ChatID    string
	Role      string
	Content   string
	CreatedAt time.Time
}

// ChatPatch is a partial chat update. Nil fields are left untouched.
type ChatPatch struct {
	Title  *string
	Pinned *bool
}

// timestampLayouts are the formats the backend has been observed to emit
// (SQLite CURRENT_TIMESTAMP and isoformat).
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// parseTimestamp parses a backend timestamp, falling back to now so a
// malformed timestamp never breaks sorting.
func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Now()
}

// chatFromRecord converts a backend chat record.
func chatFromRecord(record *api.Chat) *Chat {
	return &Chat{
		ID:        record.ID,
		Title:     record.Title,
		Pinned:    record.Pinned,
		CreatedAt: parseTimestamp(record.CreatedAt),
		UpdatedAt: parseTimestamp(record.UpdatedAt),
	}
}

// messageFromRecord converts a backend message record.
func messageFromRecord(record *api.Message) *Message {
	return &Message{
		ID:        record.ID,
		ChatID:    record.ChatID,
		Role:      record.Type,
		Content:   record.Content,
		CreatedAt: parseTimestamp(record.CreatedAt),
	}
}

// TruncateTitle derives a chat title from a prompt, truncating to 50
// characters with a "..." suffix.
func TruncateTitle(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	runes := []rune(prompt)
	if len(runes) <= maxTitleLength {
		return prompt
	}
	return string(runes[:maxTitleLength]) + "..."
}
