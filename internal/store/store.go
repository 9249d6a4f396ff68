package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"

	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/debug"
)

var log = debug.GetLogger()

// Store synchronizes local chat state with the backend. Operations that
// are preconditions for further work (create, send) return their errors;
// list/update/delete/rename failures are logged and leave state unchanged.
//
// Bubble Tea commands run in goroutines, so all state is mutex-guarded.
type Store struct {
	client *api.Client

	mu             sync.Mutex
	chats          []*Chat
	messagesByChat map[string][]*Message
	// Chats whose message history has been fetched this session. A chat
	// with a non-empty cache is never re-fetched; an empty cache may be.
	fetched      *strset.Set
	activeChatID string
	sending      bool
}

// NewStore creates a session store backed by the given client.
func NewStore(client *api.Client) *Store {
	return &Store{
		client:         client,
		messagesByChat: map[string][]*Message{},
		fetched:        strset.New(),
	}
}

// sortChats applies the ordering invariant: pinned chats first, keeping
// their relative order, then unpinned chats by last update descending.
// Callers must hold the mutex.
func (s *Store) sortChats() {
	sort.SliceStable(s.chats, func(i, j int) bool {
		a, b := s.chats[i], s.chats[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		if a.Pinned {
			return false
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
}

// findChat returns the chat with the given id, or nil. Callers must hold
// the mutex.
func (s *Store) findChat(chatID string) *Chat {
	for _, chat := range s.chats {
		if chat.ID == chatID {
			return chat
		}
	}
	return nil
}

// Bootstrap fetches all chats and selects the highest-priority one,
// triggering its message load. A fetch failure degrades to an empty chat
// list rather than blocking startup.
func (s *Store) Bootstrap(ctx context.Context) {
	records, err := s.client.ListChats(ctx)
	if err != nil {
		log.Error("bootstrap: listing chats", "error", err)
		s.mu.Lock()
		s.chats = nil
		s.mu.Unlock()
		return
	}

	chats := make([]*Chat, 0, len(records))
	for _, record := range records {
		chats = append(chats, chatFromRecord(record))
	}

	s.mu.Lock()
	s.chats = chats
	s.sortChats()
	var first string
	if len(s.chats) > 0 {
		first = s.chats[0].ID
		s.activeChatID = first
	}
	s.mu.Unlock()

	if first != "" {
		s.LoadMessages(ctx, first)
	}
}

// LoadMessages fetches a chat's history unless a non-empty cache already
// exists. Both "no messages" and a failed fetch install an empty sequence;
// the UI does not distinguish the two.
func (s *Store) LoadMessages(ctx context.Context, chatID string) {
	s.mu.Lock()
	if s.fetched.Has(chatID) && len(s.messagesByChat[chatID]) > 0 {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	records, err := s.client.ListMessages(ctx, chatID)
	if err != nil {
		log.Error("loading messages", "chat_id", chatID, "error", err)
	}

	messages := make([]*Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, messageFromRecord(record))
	}

	s.mu.Lock()
	s.messagesByChat[chatID] = messages
	s.fetched.Add(chatID)
	s.mu.Unlock()
}

// CreateChat creates a chat with the given id and makes it active. It is
// idempotent: an already-known id just activates the chat. Creation
// failures propagate since a chat is a precondition for sending.
func (s *Store) CreateChat(ctx context.Context, chatID string) error {
	s.mu.Lock()
	if existing := s.findChat(chatID); existing != nil {
		s.activeChatID = chatID
		if _, ok := s.messagesByChat[chatID]; !ok {
			s.messagesByChat[chatID] = []*Message{}
		}
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	record, err := s.client.CreateChat(ctx, &api.CreateChatRequest{
		ID:    chatID,
		Title: DefaultTitle,
	})
	if err != nil {
		return errors.Wrap(err, "creating chat")
	}

	chat := chatFromRecord(record)

	s.mu.Lock()
	s.chats = append([]*Chat{chat}, s.chats...)
	s.sortChats()
	s.activeChatID = chatID
	s.messagesByChat[chatID] = []*Message{}
	s.fetched.Add(chatID)
	s.mu.Unlock()
	return nil
}

// RenameOnFirstMessage titles a chat after its first prompt. The backend
// call runs first; a failure is logged and leaves the local title alone.
func (s *Store) RenameOnFirstMessage(ctx context.Context, chatID, prompt string) {
	title := TruncateTitle(prompt)
	if _, err := s.client.UpdateChat(ctx, chatID, &api.ChatPatch{Title: &title}); err != nil {
		log.Error("renaming chat", "chat_id", chatID, "error", err)
		return
	}

	s.mu.Lock()
	if chat := s.findChat(chatID); chat != nil {
		chat.Title = title
		chat.UpdatedAt = time.Now()
		s.sortChats()
	}
	s.mu.Unlock()
}

// AddMessageLocally appends a message to a chat's cache, creating the
// cache if absent. It never touches the backend.
func (s *Store) AddMessageLocally(chatID string, message *Message) {
	s.mu.Lock()
	s.messagesByChat[chatID] = append(s.messagesByChat[chatID], message)
	s.mu.Unlock()
}

// SendMessage submits a user message and appends the bot's reply. On
// failure a fixed error reply is appended instead and the error is
// returned. The sending flag is cleared on every path.
func (s *Store) SendMessage(ctx context.Context, chatID, text string) error {
	s.mu.Lock()
	s.sending = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.sending = false
		s.mu.Unlock()
	}()

	response, err := s.client.SendMessage(ctx, &api.SendMessageRequest{
		ChatID:  chatID,
		Message: text,
	})
	if err != nil {
		reply := &Message{
			ID:        uuid.New().String(),
			ChatID:    chatID,
			Role:      RoleBot,
			Content:   ErrorReply,
			CreatedAt: time.Now(),
		}
		s.AddMessageLocally(chatID, reply)
		// Persist the error reply so it survives a reload. Best effort.
		if saveErr := s.client.SaveMessage(ctx, &api.SaveMessageRequest{
			ID:      reply.ID,
			ChatID:  chatID,
			Type:    RoleBot,
			Content: ErrorReply,
		}); saveErr != nil {
			log.Error("saving error reply", "chat_id", chatID, "error", saveErr)
		}
		return errors.Wrap(err, "sending message")
	}

	messageID := response.MessageID
	if messageID == "" {
		messageID = uuid.New().String()
	}
	s.AddMessageLocally(chatID, &Message{
		ID:        messageID,
		ChatID:    chatID,
		Role:      RoleBot,
		Content:   response.Content,
		CreatedAt: parseTimestamp(response.Timestamp),
	})

	// The backend bumps the chat's updated_at on every exchange.
	s.mu.Lock()
	if chat := s.findChat(chatID); chat != nil {
		chat.UpdatedAt = time.Now()
		s.sortChats()
	}
	s.mu.Unlock()
	return nil
}

// DeleteChat removes a chat and its cache. Deleting the active chat clears
// the selection; no replacement is auto-selected. Failures are logged and
// leave state untouched.
func (s *Store) DeleteChat(ctx context.Context, chatID string) {
	if err := s.client.DeleteChat(ctx, chatID); err != nil {
		log.Error("deleting chat", "chat_id", chatID, "error", err)
		return
	}

	s.mu.Lock()
	for i, chat := range s.chats {
		if chat.ID == chatID {
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			break
		}
	}
	delete(s.messagesByChat, chatID)
	s.fetched.Remove(chatID)
	if s.activeChatID == chatID {
		s.activeChatID = ""
	}
	s.mu.Unlock()
}

// SetActiveChat activates a chat and triggers its message load.
func (s *Store) SetActiveChat(ctx context.Context, chatID string) {
	s.mu.Lock()
	s.activeChatID = chatID
	s.mu.Unlock()
	s.LoadMessages(ctx, chatID)
}

// UpdateChat applies a partial update (title, pinned) to the backend, then
// folds the updated record into local state and re-sorts. Failures are
// logged only.
func (s *Store) UpdateChat(ctx context.Context, chatID string, patch *ChatPatch) {
	record, err := s.client.UpdateChat(ctx, chatID, &api.ChatPatch{
		Title:  patch.Title,
		Pinned: patch.Pinned,
	})
	if err != nil {
		log.Error("updating chat", "chat_id", chatID, "error", err)
		return
	}

	s.mu.Lock()
	if chat := s.findChat(chatID); chat != nil {
		chat.Title = record.Title
		chat.Pinned = record.Pinned
		chat.UpdatedAt = parseTimestamp(record.UpdatedAt)
		s.sortChats()
	}
	s.mu.Unlock()
}

// Chats returns a snapshot of the chat list in sorted order.
func (s *Store) Chats() []*Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	chats := make([]*Chat, len(s.chats))
	copy(chats, s.chats)
	return chats
}

// Chat returns the chat with the given id, or nil.
func (s *Store) Chat(chatID string) *Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findChat(chatID)
}

// Messages returns a snapshot of a chat's cached messages.
func (s *Store) Messages(chatID string) []*Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]*Message, len(s.messagesByChat[chatID]))
	copy(messages, s.messagesByChat[chatID])
	return messages
}

// MessageCount returns the number of cached messages for a chat.
func (s *Store) MessageCount(chatID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messagesByChat[chatID])
}

// ActiveChatID returns the active chat id, or "" when none is selected.
func (s *Store) ActiveChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChatID
}

// Sending reports whether a send is in flight.
func (s *Store) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}
