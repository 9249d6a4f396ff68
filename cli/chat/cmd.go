// Package chat hosts the interactive chat TUI command.
package chat

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/finchat/finchat/cli/chat/session"
	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/configuration"
	"github.com/finchat/finchat/internal/debug"
	"github.com/finchat/finchat/internal/store"
)

var log = debug.GetLogger()

// NewCmd instantiates and returns the chat command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Clipboard support is best-effort; headless environments
			// fail initialization and alt+w becomes a no-op.
			clipboardReady := true
			if err := clipboard.Init(); err != nil {
				log.Error("initializing clipboard", "error", err)
				clipboardReady = false
			}

			m, err := session.New(ctx, config, client, store.NewStore(client), clipboardReady)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running chat: %w", err)
			}
			return nil
		},
	}
}
