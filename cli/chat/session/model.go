// Package session is the Bubble Tea model for the chat screen: sidebar,
// message viewport, composer, and the documents modal.
package session

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/finchat/finchat/cli/chat/files"
	"github.com/finchat/finchat/cli/chat/sidebar"
	"github.com/finchat/finchat/cli/chat/styles"
	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/configuration"
	"github.com/finchat/finchat/internal/debug"
	"github.com/finchat/finchat/internal/history"
	"github.com/finchat/finchat/internal/markdown"
	"github.com/finchat/finchat/internal/store"
)

const (
	FocusSidebar FocusedComponent = iota
	FocusComposer
)

var log = debug.GetLogger()

// FocusedComponent identifies which pane receives key presses.
type FocusedComponent int

// Model represents the Bubble Tea model for the chat screen.
type Model struct {
	// Core dependencies
	ctx    context.Context
	config *configuration.Config
	client *api.Client
	store  *store.Store

	// Sub-views
	sidebar    sidebar.Model
	filesModal *files.Model

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	// UI state
	width    int
	height   int
	ready    bool
	sending  bool
	err      error
	quitting bool
	focused  FocusedComponent

	// Alert notifications.
	alert bubbleup.AlertModel

	// Input history
	history           *history.History
	historyNavigating bool

	// Clipboard availability (initialization can fail on headless systems).
	clipboardReady bool
}

// New creates a new chat screen model.
func New(
	ctx context.Context,
	config *configuration.Config,
	client *api.Client,
	s *store.Store,
	clipboardReady bool,
) (*Model, error) {
	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Type your message... (Enter to send, Tab for sidebar, Ctrl+F for documents, Ctrl+C to quit)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(styles.DefaultTextareaWidth)
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Prompt = ""

	// Create spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	alert := bubbleup.NewAlertModel(25, true, 1)

	renderer, err := markdown.NewRenderer(styles.DefaultTextareaWidth)
	if err != nil {
		return nil, err
	}

	return &Model{
		ctx:            ctx,
		config:         config,
		client:         client,
		store:          s,
		sidebar:        sidebar.New(),
		textarea:       ta,
		spinner:        sp,
		renderer:       renderer,
		history:        history.NewHistory(),
		alert:          *alert,
		focused:        FocusComposer,
		clipboardReady: clipboardReady,
	}, nil
}

// Init initializes the model and kicks off the bootstrap fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.bootstrap(),
	)
}

// refreshSidebar pushes the store's current chat snapshot into the sidebar.
func (m *Model) refreshSidebar() {
	m.sidebar.SetChats(m.store.Chats(), m.store.ActiveChatID())
}

// activeChat returns the active chat, or nil when none is selected.
func (m *Model) activeChat() *store.Chat {
	chatID := m.store.ActiveChatID()
	if chatID == "" {
		return nil
	}
	return m.store.Chat(chatID)
}

// lastBotReply returns the content of the most recent bot message in the
// active chat.
func (m *Model) lastBotReply() string {
	chatID := m.store.ActiveChatID()
	if chatID == "" {
		return ""
	}
	messages := m.store.Messages(chatID)
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == store.RoleBot {
			return messages[i].Content
		}
	}
	return ""
}
