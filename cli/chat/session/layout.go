package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/finchat/finchat/cli/chat/styles"
)

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	content := m.textarea.Value()
	lineCount := strings.Count(content, "\n") + 1

	newHeight := lineCount
	if newHeight < styles.MinTextareaHeight {
		newHeight = styles.MinTextareaHeight
	}
	if newHeight > styles.MaxTextareaHeight {
		newHeight = styles.MaxTextareaHeight
	}

	oldHeight := m.textarea.Height()
	if oldHeight != newHeight {
		m.textarea.SetHeight(newHeight)

		heightDiff := newHeight - oldHeight

		m.recalculateLayout()

		if heightDiff != 0 && m.ready {
			m.viewport.LineDown(heightDiff)
		}
	}
}

// recalculateLayout adjusts pane dimensions based on current state.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	chatWidth := m.width - styles.SidebarWidth - 1
	if chatWidth < styles.DefaultTextareaWidth/2 {
		chatWidth = styles.DefaultTextareaWidth / 2
	}

	viewportHeight := m.height - styles.HeaderHeight - m.textarea.Height() - styles.InputBorderHeight
	if m.sending {
		// Typing indicator line.
		viewportHeight--
	}
	if m.err != nil {
		viewportHeight--
	}
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	if err := m.renderer.SetWidth(chatWidth - styles.MessageHorizontalFrameSize()); err != nil {
		log.Error("resizing markdown renderer", "error", err)
	}

	if !m.ready {
		m.viewport = viewport.New(chatWidth, viewportHeight)
		m.ready = true
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
	} else {
		m.viewport.Width = chatWidth
		m.viewport.Height = viewportHeight
		m.viewport.SetContent(m.renderMessages())
	}

	m.textarea.SetWidth(chatWidth - styles.TextAreaStyle.GetHorizontalPadding() - styles.TextAreaStyle.GetHorizontalBorderSize())
	m.sidebar.SetSize(styles.SidebarWidth, m.height-styles.HeaderHeight)

	if m.filesModal != nil {
		m.filesModal.SetSize(m.width*2/3, m.height*2/3)
	}
}

// refreshViewport rebuilds the viewport content from the message cache.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}
