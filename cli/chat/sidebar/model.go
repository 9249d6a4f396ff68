// Package sidebar renders the chat list grouped by pin state and recency,
// and translates key presses into chat intents for the root model.
package sidebar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finchat/finchat/cli/chat/styles"
	"github.com/finchat/finchat/cli/chat/types"
	"github.com/finchat/finchat/internal/store"
)

// Model is the sidebar pane. It holds a snapshot of the chat list; the
// root model refreshes it whenever the session store changes.
type Model struct {
	chats    []*store.Chat
	activeID string

	// Flattened chats in display order; cursor indexes into it.
	visible []*store.Chat
	cursor  int

	filterInput textinput.Model
	filtering   bool

	width   int
	height  int
	focused bool
}

// New creates an empty sidebar.
func New() Model {
	fi := textinput.New()
	fi.Placeholder = "filter..."
	fi.CharLimit = 100
	fi.Prompt = "/"

	return Model{
		filterInput: fi,
		width:       styles.SidebarWidth,
	}
}

// SetChats installs a fresh chat snapshot, preserving the cursor position
// where possible.
func (m *Model) SetChats(chats []*store.Chat, activeID string) {
	m.chats = chats
	m.activeID = activeID
	m.rebuild()
}

// SetSize updates the sidebar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused toggles keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if !focused {
		m.filterInput.Blur()
		m.filtering = false
	}
}

// Filtering reports whether the filter input is capturing keys.
func (m *Model) Filtering() bool {
	return m.filtering
}

// rebuild recomputes the visible chat sequence from the current filter.
func (m *Model) rebuild() {
	m.visible = FilterChats(m.chats, m.filterInput.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles key messages while the sidebar is focused.
func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filterInput.Blur()
			m.filtering = false
			return m, nil
		case "esc":
			m.filterInput.SetValue("")
			m.filterInput.Blur()
			m.filtering = false
			m.rebuild()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.rebuild()
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "enter":
		if chat := m.selected(); chat != nil {
			return m, intent(types.SelectChatIntent{ChatID: chat.ID})
		}

	case "d":
		if chat := m.selected(); chat != nil {
			return m, intent(types.DeleteChatIntent{ChatID: chat.ID})
		}

	case "p":
		if chat := m.selected(); chat != nil {
			return m, intent(types.TogglePinIntent{ChatID: chat.ID})
		}

	case "n":
		return m, intent(types.NewChatIntent{})

	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func intent(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// selected returns the chat under the cursor, or nil.
func (m *Model) selected() *store.Chat {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// View renders the sidebar. An active filter suppresses bucketing and
// shows a flat match list.
func (m Model) View() string {
	var b strings.Builder

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(styles.FilterStyle.Render(m.filterInput.View()))
		b.WriteString("\n")
		for _, chat := range m.visible {
			b.WriteString(m.renderChat(chat))
			b.WriteString("\n")
		}
	} else {
		for _, section := range BuildSections(m.visible, time.Now()) {
			b.WriteString(styles.SectionHeaderStyle.Render(section.Label))
			b.WriteString("\n")
			for _, chat := range section.Chats {
				b.WriteString(m.renderChat(chat))
				b.WriteString("\n")
			}
		}
	}

	if len(m.visible) == 0 {
		b.WriteString(styles.HelpStyle.Render("no chats"))
		b.WriteString("\n")
	}

	style := styles.SidebarStyle
	if m.focused {
		style = styles.SidebarFocusedStyle
	}
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Width(m.width).Render(b.String())
}

// renderChat renders one chat line with pin marker and selection state.
func (m Model) renderChat(chat *store.Chat) string {
	marker := "  "
	if chat.Pinned {
		marker = styles.PinMarkerStyle.Render("* ")
	}

	maxTitle := m.width - 4
	if maxTitle < 8 {
		maxTitle = 8
	}
	title := styles.Truncate(chat.Title, maxTitle)

	selected := m.selected() != nil && m.selected().ID == chat.ID
	switch {
	case selected && m.focused:
		return marker + styles.ChatItemSelectedStyle.Render(title)
	case chat.ID == m.activeID:
		return marker + styles.ChatItemActiveStyle.Render(title)
	default:
		return marker + styles.ChatItemStyle.Render(title)
	}
}
