// Package types holds the Bubble Tea messages exchanged between the chat
// TUI's panes.
package types

import (
	"github.com/finchat/finchat/internal/api"
)

// BootstrapDoneMsg signals that the initial chat list fetch finished.
type BootstrapDoneMsg struct{}

// ChatsRefreshedMsg signals that the chat list changed (create, delete,
// pin, rename) and the sidebar should re-render.
type ChatsRefreshedMsg struct{}

// ChatSelectedMsg signals that a chat became active and its messages are
// cached.
type ChatSelectedMsg struct {
	ChatID string
}

// TurnDoneMsg signals that a full user turn (create/append/rename/send)
// finished. Err carries the send failure, already reflected in the message
// cache as an error reply.
type TurnDoneMsg struct {
	ChatID string
	Err    error
}

// Sidebar intents, handled by the root model.
type (
	// SelectChatIntent asks for a chat to become active.
	SelectChatIntent struct{ ChatID string }
	// DeleteChatIntent asks for a chat to be deleted.
	DeleteChatIntent struct{ ChatID string }
	// TogglePinIntent asks for a chat's pin flag to be flipped.
	TogglePinIntent struct{ ChatID string }
	// NewChatIntent asks for a fresh chat.
	NewChatIntent struct{}
)

// FilesLoadedMsg carries a category's file listing.
type FilesLoadedMsg struct {
	Category string
	Files    []*api.UploadedFile
	Err      error
}

// UploadResult aggregates a multi-file upload.
type UploadResult struct {
	Uploaded int
	Skipped  int
	Failed   int
	Err      error // first upload error, when any
}

// UploadFinishedMsg signals that a sequential upload batch completed.
type UploadFinishedMsg struct {
	Category string
	Result   UploadResult
}

// FileDeletedMsg signals that a single file delete completed.
type FileDeletedMsg struct {
	Category string
	Err      error
}

// CloseFilesMsg asks the root model to dismiss the files modal.
type CloseFilesMsg struct{}
