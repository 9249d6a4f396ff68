// Package files is the document browser modal: per-category listing,
// multi-file upload, and single-file delete against the backend's file
// endpoints. It is independent of chat session state.
package files

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"github.com/finchat/finchat/cli/chat/styles"
	"github.com/finchat/finchat/cli/chat/types"
	"github.com/finchat/finchat/internal/api"
)

type mode int

const (
	modeList mode = iota
	modeCategory
	modeUpload
)

// Model is the files modal.
type Model struct {
	ctx    context.Context
	client *api.Client

	category  string
	files     []*api.UploadedFile
	cursor    int
	catCursor int
	mode      mode

	uploadInput textinput.Model
	loading     bool
	status      string

	width  int
	height int
}

// New creates a files modal scoped to the given starting category.
func New(ctx context.Context, client *api.Client, category string) Model {
	ui := textinput.New()
	ui.Placeholder = "paths to .xlsx/.xls/.csv files..."
	ui.CharLimit = 0

	catCursor := 0
	for i, c := range api.Categories {
		if c == category {
			catCursor = i
		}
	}

	return Model{
		ctx:         ctx,
		client:      client,
		category:    category,
		catCursor:   catCursor,
		uploadInput: ui,
	}
}

// Init triggers the initial listing.
func (m Model) Init() tea.Cmd {
	return m.loadFiles()
}

// SetSize updates the modal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadFiles fetches the selected category's listing.
func (m *Model) loadFiles() tea.Cmd {
	m.loading = true
	ctx, client, category := m.ctx, m.client, m.category
	return func() tea.Msg {
		list, err := client.ListFilesByCategory(ctx, category)
		if err != nil {
			return types.FilesLoadedMsg{Category: category, Err: err}
		}
		return types.FilesLoadedMsg{Category: category, Files: list.Files}
	}
}

// Update handles messages while the modal is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case types.FilesLoadedMsg:
		if msg.Category != m.category {
			// Stale listing for a category we've since left.
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.status = fmt.Sprintf("listing failed: %v", msg.Err)
			m.files = nil
			return m, nil
		}
		m.files = msg.Files
		if m.cursor >= len(m.files) {
			m.cursor = max(0, len(m.files)-1)
		}
		return m, nil

	case types.UploadFinishedMsg:
		m.loading = false
		m.status = summarize(msg.Result)
		if msg.Result.Uploaded > 0 {
			// At least one success closes the upload form and refreshes.
			m.mode = modeList
			m.uploadInput.SetValue("")
			m.uploadInput.Blur()
			return m, m.loadFiles()
		}
		return m, nil

	case types.FileDeletedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.Err)
			return m, nil
		}
		m.status = "file deleted"
		if msg.Category == m.category {
			return m, m.loadFiles()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeUpload:
		switch msg.String() {
		case "esc":
			m.mode = modeList
			m.uploadInput.Blur()
			return m, nil
		case "enter":
			return m.startUpload()
		}
		var cmd tea.Cmd
		m.uploadInput, cmd = m.uploadInput.Update(msg)
		return m, cmd

	case modeCategory:
		switch msg.String() {
		case "up", "k":
			if m.catCursor > 0 {
				m.catCursor--
			}
		case "down", "j":
			if m.catCursor < len(api.Categories)-1 {
				m.catCursor++
			}
		case "enter":
			m.category = api.Categories[m.catCursor]
			m.mode = modeList
			m.cursor = 0
			m.status = ""
			return m, m.loadFiles()
		case "esc":
			m.mode = modeList
		}
		return m, nil

	default: // modeList
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return types.CloseFilesMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case "c", "tab":
			m.mode = modeCategory
		case "u":
			m.mode = modeUpload
			m.uploadInput.Focus()
			return m, textinput.Blink
		case "d":
			if m.cursor >= 0 && m.cursor < len(m.files) && !m.loading {
				return m.deleteFile(m.files[m.cursor].FileID)
			}
		case "r":
			return m, m.loadFiles()
		}
		return m, nil
	}
}

// startUpload validates paths client-side, then uploads the survivors
// sequentially.
func (m Model) startUpload() (Model, tea.Cmd) {
	paths, err := shellquote.Split(m.uploadInput.Value())
	if err != nil {
		m.status = fmt.Sprintf("bad input: %v", err)
		return m, nil
	}
	if len(paths) == 0 {
		return m, nil
	}

	m.loading = true
	ctx, client, category := m.ctx, m.client, m.category
	return m, func() tea.Msg {
		result := Upload(ctx, client, category, "", paths)
		return types.UploadFinishedMsg{Category: category, Result: result}
	}
}

func (m Model) deleteFile(fileID string) (Model, tea.Cmd) {
	m.loading = true
	ctx, client, category := m.ctx, m.client, m.category
	return m, func() tea.Msg {
		err := client.DeleteFile(ctx, fileID)
		return types.FileDeletedMsg{Category: category, Err: err}
	}
}

// summarize formats an aggregate upload outcome.
func summarize(result types.UploadResult) string {
	parts := []string{}
	if result.Uploaded > 0 {
		parts = append(parts, fmt.Sprintf("%d uploaded", result.Uploaded))
	}
	if result.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped (bad extension)", result.Skipped))
	}
	if result.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", result.Failed))
	}
	if len(parts) == 0 {
		return "nothing to upload"
	}
	summary := strings.Join(parts, ", ")
	if result.Err != nil {
		summary += fmt.Sprintf(": %v", result.Err)
	}
	return summary
}

// View renders the modal.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render("Documents"))
	b.WriteString("  ")
	b.WriteString(styles.CategoryStyle.Render(m.category))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCategory:
		for i, category := range api.Categories {
			line := "  " + category
			if i == m.catCursor {
				line = styles.FileItemSelectedStyle.Render("> " + category)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("enter: select  esc: back"))

	case modeUpload:
		b.WriteString(m.uploadInput.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("enter: upload  esc: cancel"))

	default:
		if m.loading {
			b.WriteString(styles.HelpStyle.Render("loading..."))
			b.WriteString("\n")
		} else if len(m.files) == 0 {
			b.WriteString(styles.HelpStyle.Render("no documents in this category"))
			b.WriteString("\n")
		}
		for i, file := range m.files {
			line := fmt.Sprintf("%s  %s  %s", file.OriginalFilename, formatSize(file.FileSize), file.UploadedAt)
			if i == m.cursor {
				b.WriteString(styles.FileItemSelectedStyle.Render(line))
			} else {
				b.WriteString(styles.FileItemStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("u: upload  d: delete  c: category  r: refresh  esc: close"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render(m.status))
	}

	return styles.ModalStyle.Render(b.String())
}

// formatSize formats a byte count for display.
func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
