package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// ListChats returns every chat, most recently updated first.
func (c *Client) ListChats(ctx context.Context) ([]*Chat, error) {
	var chats []*Chat
	if err := c.do(ctx, http.MethodGet, "/chat/list", nil, &chats); err != nil {
		return nil, errors.Wrap(err, "listing chats")
	}
	return chats, nil
}

// CreateChat creates a chat with a client-assigned id.
func (c *Client) CreateChat(ctx context.Context, request *CreateChatRequest) (*Chat, error) {
	chat := &Chat{}
	if err := c.do(ctx, http.MethodPost, "/chat/create", request, chat); err != nil {
		return nil, errors.Wrap(err, "creating chat")
	}
	return chat, nil
}

// GetChat fetches a single chat.
func (c *Client) GetChat(ctx context.Context, chatID string) (*Chat, error) {
	chat := &Chat{}
	if err := c.do(ctx, http.MethodGet, "/chat/"+url.PathEscape(chatID), nil, chat); err != nil {
		return nil, errors.Wrap(err, "getting chat")
	}
	return chat, nil
}

// UpdateChat applies a partial update and returns the updated record.
func (c *Client) UpdateChat(ctx context.Context, chatID string, patch *ChatPatch) (*Chat, error) {
	chat := &Chat{}
	if err := c.do(ctx, http.MethodPut, "/chat/"+url.PathEscape(chatID), patch, chat); err != nil {
		return nil, errors.Wrap(err, "updating chat")
	}
	return chat, nil
}

// DeleteChat deletes a chat and all of its messages.
func (c *Client) DeleteChat(ctx context.Context, chatID string) error {
	if err := c.do(ctx, http.MethodDelete, "/chat/"+url.PathEscape(chatID), nil, nil); err != nil {
		return errors.Wrap(err, "deleting chat")
	}
	return nil
}

// ListMessages returns a chat's messages in creation order.
func (c *Client) ListMessages(ctx context.Context, chatID string) ([]*Message, error) {
	var messages []*Message
	if err := c.do(ctx, http.MethodGet, "/chat/"+url.PathEscape(chatID)+"/messages", nil, &messages); err != nil {
		return nil, errors.Wrap(err, "listing messages")
	}
	return messages, nil
}

// SendMessage submits a user message and waits for the bot's reply.
func (c *Client) SendMessage(ctx context.Context, request *SendMessageRequest) (*SendMessageResponse, error) {
	response := &SendMessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/chat/message", request, response); err != nil {
		return nil, errors.Wrap(err, "sending message")
	}
	return response, nil
}

// SaveMessage persists a message without triggering a reply.
func (c *Client) SaveMessage(ctx context.Context, request *SaveMessageRequest) error {
	if err := c.do(ctx, http.MethodPost, "/chat/message/save", request, nil); err != nil {
		return errors.Wrap(err, "saving message")
	}
	return nil
}
