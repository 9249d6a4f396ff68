// Package chats lists conversations without entering the TUI.
package chats

import (
	"github.com/spf13/cobra"

	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/cli"
)

// NewCmd instantiates and returns the chats command.
func NewCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Limit int
	}

	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List chats",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			chats, err := client.ListChats(cmd.Context())
			cobra.CheckErr(err)

			cli.Title("FINCHAT CHATS")
			if len(chats) == 0 {
				cli.Detail("no chats\n")
				return
			}

			count := 0
			for _, chat := range chats {
				if opts.Limit > 0 && count >= opts.Limit {
					break
				}
				count++
				if chat.Pinned {
					cli.PinnedMarker("* ")
				} else {
					cli.ChatEntry("  ")
				}
				cli.ChatEntry("%s (%s)\n", chat.Title, chat.ID)
				cli.Detail("  updated %s\n", chat.UpdatedAt)
			}
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "Maximum number of chats to print (0 for all)")
	return cmd
}
