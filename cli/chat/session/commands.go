package session

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finchat/finchat/cli/chat/types"
	"github.com/finchat/finchat/internal/store"
)

// bootstrap fetches the chat list and the first chat's history.
func (m *Model) bootstrap() tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		s.Bootstrap(ctx)
		return types.BootstrapDoneMsg{}
	}
}

// submitTurn runs a full user turn for the composer's content.
func (m *Model) submitTurn(input string) tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		chatID, err := RunUserTurn(ctx, s, input)
		return types.TurnDoneMsg{ChatID: chatID, Err: err}
	}
}

// selectChat activates a chat and loads its history.
func (m *Model) selectChat(chatID string) tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		s.SetActiveChat(ctx, chatID)
		return types.ChatSelectedMsg{ChatID: chatID}
	}
}

// newChat creates an empty chat and activates it.
func (m *Model) newChat() tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		chatID := NewChatID()
		if err := s.CreateChat(ctx, chatID); err != nil {
			log.Error("creating chat", "chat_id", chatID, "error", err)
		}
		return types.ChatsRefreshedMsg{}
	}
}

// deleteChat deletes a chat on the backend and locally.
func (m *Model) deleteChat(chatID string) tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		s.DeleteChat(ctx, chatID)
		return types.ChatsRefreshedMsg{}
	}
}

// togglePin flips a chat's pinned flag.
func (m *Model) togglePin(chatID string) tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		if chat := s.Chat(chatID); chat != nil {
			pinned := !chat.Pinned
			s.UpdateChat(ctx, chatID, &store.ChatPatch{Pinned: &pinned})
		}
		return types.ChatsRefreshedMsg{}
	}
}
