package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finchat/finchat/cli/chat/styles"
	"github.com/finchat/finchat/internal/store"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	if m.filesModal != nil {
		return m.alert.Render(lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.filesModal.View(),
		))
	}

	var chat strings.Builder
	chat.WriteString(styles.ViewportStyle.Render(m.viewport.View()))
	chat.WriteString("\n")

	if m.sending {
		chat.WriteString(styles.TypingStyle.Render(fmt.Sprintf("%s Assistant is typing...", m.spinner.View())))
		chat.WriteString("\n")
	}

	textareaStyle := styles.TextAreaStyle
	if m.sending {
		textareaStyle = styles.TextAreaDisabledStyle
	}
	chat.WriteString(textareaStyle.Render(m.textarea.View()))

	if m.err != nil {
		chat.WriteString("\n")
		chat.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), chat.String()))

	return m.alert.Render(b.String())
}

func (m *Model) renderTitle() string {
	title := " 💬 FinChat "
	if chat := m.activeChat(); chat != nil {
		title = fmt.Sprintf(" 💬 FinChat │ %s ", chat.Title)
	}
	return styles.TitleStyle.Width(m.width).Render(title)
}

// renderMessages renders the active chat's message history.
func (m *Model) renderMessages() string {
	chatID := m.store.ActiveChatID()
	if chatID == "" {
		return styles.HelpStyle.Render(
			"Welcome to FinChat.\n\n" +
				"Type a message to start a conversation.\n" +
				"Tab switches to the chat list, Ctrl+F opens the document browser.")
	}

	messages := m.store.Messages(chatID)
	if len(messages) == 0 {
		return styles.HelpStyle.Render("No messages yet. Say hello!")
	}

	var b strings.Builder
	for i, message := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch message.Role {
		case store.RoleUser:
			b.WriteString(styles.UserMessageStyle.Render(message.Content))
		default:
			rendered := m.renderer.ToMarkdown(message.Content, i)
			b.WriteString(styles.BotMessageStyle.Render(rendered))
		}
		b.WriteString("\n")
		b.WriteString(styles.TimestampStyle.Render(message.CreatedAt.Format("Jan 2 15:04")))
	}
	return b.String()
}
