package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Textarea
	MinTextareaHeight    = 3
	MaxTextareaHeight    = 10
	DefaultTextareaWidth = 80
	TextAreaPaddingLeft  = 1

	// Viewport
	MinViewportHeight = 1

	// Layout
	InputBorderHeight  = 2
	HeaderHeight       = 2
	MessagePaddingLeft = 2
	SidebarWidth       = 32
	SidebarMinHeight   = 5

	// Truncation
	TruncateSuffix       = "..."
	TruncateSuffixLength = 3
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	SuccessColor   = lipgloss.Color("#10B981") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	PinColor       = lipgloss.Color("#FCD34D") // Yellow
	BorderColor    = lipgloss.Color("#4B5563")
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
		Background(PrimaryColor).
		Foreground(TextColor).
		Bold(true)
)

// Messages.
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(10)

	BotMessageStyle = lipgloss.NewStyle().
			Inherit(messageStyle).
			BorderForeground(SecondaryColor).
			MarginRight(10)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(DimTextColor).
			Italic(true)

	TypingStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true).
			PaddingLeft(MessagePaddingLeft)
)

// Sidebar
var (
	SidebarStyle = lipgloss.NewStyle().
			Width(SidebarWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(BorderColor).
			PaddingRight(1)

	SidebarFocusedStyle = SidebarStyle.
				BorderForeground(PrimaryColor)

	SectionHeaderStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	ChatItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ChatItemActiveStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor)

	ChatItemSelectedStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor)

	PinMarkerStyle = lipgloss.NewStyle().
			Foreground(PinColor)

	FilterStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// Modal (file browser / upload)
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	FileItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	FileItemSelectedStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
)

// Error
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
)

// Input area
var (
	TextAreaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			PaddingLeft(TextAreaPaddingLeft)

	TextAreaDisabledStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(MutedColor).
				PaddingLeft(TextAreaPaddingLeft)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
)

// Viewport
var (
	ViewportStyle = lipgloss.NewStyle().Margin(0).Padding(0)
)

// MessageHorizontalFrameSize returns the horizontal frame size of bot messages.
func MessageHorizontalFrameSize() int {
	return BotMessageStyle.GetHorizontalFrameSize()
}

// Truncate truncates a string to the specified length with a suffix.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-TruncateSuffixLength]) + TruncateSuffix
}
