package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/store"
)

// turnBackend records the requests a user turn issues.
type turnBackend struct {
	mux *http.ServeMux

	createdID  string
	renamedTo  string
	sentInputs []string
	failSend   bool
}

func newTurnBackend() *turnBackend {
	b := &turnBackend{mux: http.NewServeMux()}

	b.mux.HandleFunc("/chat/create", func(w http.ResponseWriter, r *http.Request) {
		request := &api.CreateChatRequest{}
		json.NewDecoder(r.Body).Decode(request)
		b.createdID = request.ID
		json.NewEncoder(w).Encode(&api.Chat{
			ID:        request.ID,
			Title:     request.Title,
			CreatedAt: "2025-01-02T10:00:00Z",
			UpdatedAt: "2025-01-02T10:00:00Z",
		})
	})

	b.mux.HandleFunc("/chat/message", func(w http.ResponseWriter, r *http.Request) {
		request := &api.SendMessageRequest{}
		json.NewDecoder(r.Body).Decode(request)
		b.sentInputs = append(b.sentInputs, request.Message)
		if b.failSend {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "model unavailable"})
			return
		}
		json.NewEncoder(w).Encode(&api.SendMessageResponse{
			MessageID: "reply-1",
			Content:   "here you go",
			Type:      api.RoleBot,
			Timestamp: "2025-01-02T10:05:00Z",
		})
	})

	b.mux.HandleFunc("/chat/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			patch := &api.ChatPatch{}
			json.NewDecoder(r.Body).Decode(patch)
			if patch.Title != nil {
				b.renamedTo = *patch.Title
			}
			json.NewEncoder(w).Encode(&api.Chat{
				ID:        strings.TrimPrefix(r.URL.Path, "/chat/"),
				Title:     b.renamedTo,
				UpdatedAt: "2025-01-02T10:05:00Z",
			})
			return
		}
		json.NewEncoder(w).Encode([]*api.Message{})
	})

	return b
}

func newTurnStore(t *testing.T, backend *turnBackend) *store.Store {
	t.Helper()
	server := httptest.NewServer(backend.mux)
	t.Cleanup(server.Close)
	return store.NewStore(api.New(server.URL, time.Second))
}

func TestRunUserTurnCreatesChatWhenNoneActive(t *testing.T) {
	backend := newTurnBackend()
	s := newTurnStore(t, backend)

	chatID, err := RunUserTurn(context.Background(), s, "What is our Q3 revenue?")
	require.NoError(t, err)

	assert.Equal(t, backend.createdID, chatID)
	assert.Equal(t, chatID, s.ActiveChatID())
	assert.Equal(t, "What is our Q3 revenue?", backend.renamedTo)
	assert.Equal(t, []string{"What is our Q3 revenue?"}, backend.sentInputs)

	messages := s.Messages(chatID)
	require.Len(t, messages, 2)
	assert.Equal(t, store.RoleUser, messages[0].Role)
	assert.Equal(t, "What is our Q3 revenue?", messages[0].Content)
	assert.Equal(t, store.RoleBot, messages[1].Role)
	assert.Equal(t, "here you go", messages[1].Content)
}

func TestRunUserTurnReusesActiveChat(t *testing.T) {
	backend := newTurnBackend()
	s := newTurnStore(t, backend)
	require.NoError(t, s.CreateChat(context.Background(), "existing"))
	backend.createdID = ""

	chatID, err := RunUserTurn(context.Background(), s, "first question")
	require.NoError(t, err)
	assert.Equal(t, "existing", chatID)
	assert.Empty(t, backend.createdID)
	assert.Equal(t, "first question", backend.renamedTo)

	// A second turn must not rename again.
	backend.renamedTo = ""
	_, err = RunUserTurn(context.Background(), s, "second question")
	require.NoError(t, err)
	assert.Empty(t, backend.renamedTo)
	assert.Len(t, s.Messages("existing"), 4)
}

func TestRunUserTurnSendFailureKeepsUserMessage(t *testing.T) {
	backend := newTurnBackend()
	backend.failSend = true
	s := newTurnStore(t, backend)

	chatID, err := RunUserTurn(context.Background(), s, "doomed question")
	require.Error(t, err)
	require.NotEmpty(t, chatID)

	messages := s.Messages(chatID)
	require.Len(t, messages, 2)
	assert.Equal(t, "doomed question", messages[0].Content)
	assert.Equal(t, store.ErrorReply, messages[1].Content)
	assert.False(t, s.Sending())
}

func TestNewChatIDIsShort(t *testing.T) {
	id := NewChatID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, NewChatID())
}

func TestRunUserTurnTrimsInput(t *testing.T) {
	backend := newTurnBackend()
	s := newTurnStore(t, backend)

	chatID, err := RunUserTurn(context.Background(), s, "  padded  \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"padded"}, backend.sentInputs)
	assert.Equal(t, "padded", s.Messages(chatID)[0].Content)
}
