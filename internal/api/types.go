package api

// Message roles as the backend stores them.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Categories the backend partitions uploaded documents into.
var Categories = []string{"purchase", "hr", "finance", "other"}

// Chat is a chat record as returned by the backend. Timestamps are backend
// strings; parsing is left to callers.
type Chat struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Pinned    bool   `json:"pinned"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Message is a single chat message record.
type Message struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CreateChatRequest creates a chat with a client-assigned id.
type CreateChatRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Pinned bool   `json:"pinned"`
}

// ChatPatch is a partial chat update. Nil fields are left untouched.
type ChatPatch struct {
	Title  *string `json:"title,omitempty"`
	Pinned *bool   `json:"pinned,omitempty"`
}

// SendMessageRequest submits a user message for a bot reply.
type SendMessageRequest struct {
	ChatID  string `json:"chat_id"`
	Message string `json:"message"`
}

// SendMessageResponse is the bot's reply.
type SendMessageResponse struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// SaveMessageRequest persists a message without triggering a reply.
type SaveMessageRequest struct {
	ID      string `json:"id"`
	ChatID  string `json:"chat_id"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Ack is the backend's generic success response.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadedFile is a stored document record.
type UploadedFile struct {
	FileID           string `json:"file_id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileSize         int64  `json:"file_size"`
	FileType         string `json:"file_type"`
	Category         string `json:"category"`
	UploadedAt       string `json:"uploaded_at"`
	Description      string `json:"description,omitempty"`
}

// FileList is the response to a category listing.
type FileList struct {
	Files    []*UploadedFile `json:"files"`
	Total    int             `json:"total"`
	Category string          `json:"category,omitempty"`
}

// Health is the backend's health check response.
type Health struct {
	Status string `json:"status"`
}
