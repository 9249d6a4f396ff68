package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	titleColor     = color.New(color.FgMagenta, color.Bold) // Bold magenta for titles
	separatorColor = color.New(color.FgHiBlack)             // Dark grey for separators
	chatColor      = color.New(color.FgCyan)                // Cyan for chat entries
	pinnedColor    = color.New(color.FgYellow)              // Yellow for pinned markers
	fileColor      = color.New(color.FgGreen)               // Green for file entries
	detailColor    = color.New(color.FgWhite)               // White for detail lines
	errorColor     = color.New(color.FgRed, color.Bold)     // Bold red for errors

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", width-len(title)-len(separator1))
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	titleColor.Println(output)
}

// ChatEntry printed to cli.
func ChatEntry(text string, args ...any) {
	chatColor.Printf(text, args...)
}

// PinnedMarker printed to cli.
func PinnedMarker(text string, args ...any) {
	pinnedColor.Printf(text, args...)
}

// FileEntry printed to cli.
func FileEntry(text string, args ...any) {
	fileColor.Printf(text, args...)
}

// Detail printed to cli.
func Detail(text string, args ...any) {
	detailColor.Printf(text, args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	survey.AskOne(surveyQuestion, &confirm)
	return confirm
}

// SelectCategory prompts the user to pick a document category.
func SelectCategory(categories []string, defaultCategory string) (string, error) {
	selected := ""
	prompt := &survey.Select{
		Message: "Category:",
		Options: categories,
		Default: defaultCategory,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
