package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"github.com/finchat/finchat/cli/chat/files"
	"github.com/finchat/finchat/cli/chat/types"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.sending {
			// Show the optimistic user message as soon as the turn
			// appends it.
			m.refreshViewport(true)
		}
		return m, tea.Batch(cmds...)

	case types.BootstrapDoneMsg:
		m.refreshSidebar()
		m.refreshViewport(true)
		return m, tea.Batch(cmds...)

	case types.ChatsRefreshedMsg:
		m.refreshSidebar()
		m.refreshViewport(true)
		return m, tea.Batch(cmds...)

	case types.ChatSelectedMsg:
		m.renderer.Reset()
		m.refreshSidebar()
		m.refreshViewport(true)
		m.focused = FocusComposer
		m.sidebar.SetFocused(false)
		m.textarea.Focus()
		cmds = append(cmds, textarea.Blink)
		return m, tea.Batch(cmds...)

	case types.TurnDoneMsg:
		m.sending = false
		m.err = msg.Err
		m.refreshSidebar()
		m.recalculateLayout()
		m.refreshViewport(true)
		return m, tea.Batch(cmds...)

	case types.SelectChatIntent:
		cmds = append(cmds, m.selectChat(msg.ChatID))
		return m, tea.Batch(cmds...)

	case types.DeleteChatIntent:
		cmds = append(cmds, m.deleteChat(msg.ChatID))
		return m, tea.Batch(cmds...)

	case types.TogglePinIntent:
		cmds = append(cmds, m.togglePin(msg.ChatID))
		return m, tea.Batch(cmds...)

	case types.NewChatIntent:
		cmds = append(cmds, m.newChat())
		return m, tea.Batch(cmds...)

	case types.CloseFilesMsg:
		m.filesModal = nil
		m.textarea.Focus()
		cmds = append(cmds, textarea.Blink)
		return m, tea.Batch(cmds...)

	case types.FilesLoadedMsg, types.UploadFinishedMsg, types.FileDeletedMsg:
		if m.filesModal != nil {
			modal, cmd := m.filesModal.Update(msg)
			m.filesModal = &modal
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg, cmds)
	}

	// Remaining messages (cursor blinks and the like) feed the focused
	// text component.
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// The modal swallows every other key while open.
	if m.filesModal != nil {
		modal, cmd := m.filesModal.Update(msg)
		m.filesModal = &modal
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	switch msg.String() {
	case "ctrl+f":
		modal := files.New(m.ctx, m.client, m.defaultCategory())
		m.filesModal = &modal
		m.filesModal.SetSize(m.width*2/3, m.height*2/3)
		m.textarea.Blur()
		cmds = append(cmds, m.filesModal.Init())
		return m, tea.Batch(cmds...)

	case "tab":
		if m.sidebar.Filtering() {
			break
		}
		if m.focused == FocusComposer {
			m.focused = FocusSidebar
			m.sidebar.SetFocused(true)
			m.textarea.Blur()
		} else {
			m.focused = FocusComposer
			m.sidebar.SetFocused(false)
			m.textarea.Focus()
			cmds = append(cmds, textarea.Blink)
		}
		return m, tea.Batch(cmds...)

	case "alt+w":
		if content := m.lastBotReply(); content != "" && m.clipboardReady {
			clipboard.Write(clipboard.FmtText, []byte(content))
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"))
		}
		return m, tea.Batch(cmds...)
	}

	if m.focused == FocusSidebar {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Composer focus from here on.
	if msg.Alt && !m.sending {
		switch msg.String() {
		case "alt+p":
			if entry, ok := m.history.Previous(m.textarea.Value()); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return m, tea.Batch(cmds...)
		case "alt+n":
			if entry, ok := m.history.Next(); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return m, tea.Batch(cmds...)
		}
	}

	if msg.Type == tea.KeyEnter {
		input := strings.TrimSpace(m.textarea.Value())
		if input == "" || m.sending {
			return m, tea.Batch(cmds...)
		}
		m.history.Add(input)
		m.historyNavigating = false
		m.textarea.Reset()
		m.sending = true
		m.err = nil
		m.recalculateLayout()
		cmds = append(cmds, m.submitTurn(input), m.spinner.Tick)
		return m, tea.Batch(cmds...)
	}

	if m.historyNavigating {
		switch msg.Type {
		case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
			m.history.Reset()
			m.historyNavigating = false
		}
	}

	if !m.sending {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.adjustTextareaHeight()
	}

	switch msg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// defaultCategory returns the configured starting category for the
// document browser.
func (m *Model) defaultCategory() string {
	if m.config != nil && m.config.Files != nil && m.config.Files.DefaultCategory != "" {
		return m.config.Files.DefaultCategory
	}
	return "other"
}
