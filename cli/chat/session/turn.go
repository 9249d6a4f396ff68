package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finchat/finchat/internal/store"
)

// RunUserTurn executes a full user turn: it ensures a chat exists,
// appends the user message to the local cache, titles the chat when this
// is its first message, then submits to the backend. The returned chat id
// identifies the chat the turn ran against and is valid even when the
// send failed.
func RunUserTurn(ctx context.Context, s *store.Store, input string) (string, error) {
	input = strings.TrimSpace(input)

	chatID := s.ActiveChatID()
	if chatID == "" {
		chatID = NewChatID()
		if err := s.CreateChat(ctx, chatID); err != nil {
			return chatID, err
		}
	}

	first := s.MessageCount(chatID) == 0

	s.AddMessageLocally(chatID, &store.Message{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		Role:      store.RoleUser,
		Content:   input,
		CreatedAt: time.Now(),
	})

	if first {
		s.RenameOnFirstMessage(ctx, chatID, input)
	}

	return chatID, s.SendMessage(ctx, chatID, input)
}

// NewChatID returns a fresh short chat id.
func NewChatID() string {
	return uuid.New().String()[:8]
}
