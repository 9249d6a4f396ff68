package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chat/list", r.URL.Path)
		json.NewEncoder(w).Encode([]*Chat{
			{ID: "a", Title: "First", Pinned: true},
			{ID: "b", Title: "Second"},
		})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	chats, err := client.ListChats(context.Background())
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "a", chats[0].ID)
	assert.True(t, chats[0].Pinned)
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/message", r.URL.Path)

		request := &SendMessageRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Equal(t, "chat-1", request.ChatID)
		assert.Equal(t, "hello", request.Message)

		json.NewEncoder(w).Encode(&SendMessageResponse{
			MessageID: "msg-1",
			Content:   "hi there",
			Type:      RoleBot,
			Timestamp: "2025-01-02T10:00:00Z",
		})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	response, err := client.SendMessage(context.Background(), &SendMessageRequest{
		ChatID:  "chat-1",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", response.MessageID)
	assert.Equal(t, "hi there", response.Content)
}

func TestUpdateChatOmitsNilFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/chat/chat-1", r.URL.Path)

		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["pinned"])
		assert.NotContains(t, body, "title")

		json.NewEncoder(w).Encode(&Chat{ID: "chat-1", Title: "kept", Pinned: true})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	pinned := true
	chat, err := client.UpdateChat(context.Background(), "chat-1", &ChatPatch{Pinned: &pinned})
	require.NoError(t, err)
	assert.True(t, chat.Pinned)
	assert.Equal(t, "kept", chat.Title)
}

func TestErrorCarriesBackendDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Chat not found"})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	_, err := client.GetChat(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend returned 404")
	assert.Contains(t, err.Error(), "Chat not found")
}

func TestErrorWithoutDetailBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	err := client.DeleteChat(context.Background(), "chat-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend returned 500")
}

func TestChatIDIsPathEscaped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/a%2Fb", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(&Chat{ID: "a/b"})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	_, err := client.GetChat(context.Background(), "a/b")
	require.NoError(t, err)
}
