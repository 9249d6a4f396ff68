// Package status reports backend reachability.
package status

import (
	"github.com/spf13/cobra"

	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/cli"
	"github.com/finchat/finchat/internal/configuration"
)

// NewCmd instantiates and returns the status command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check backend health",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			health, err := client.CheckHealth(cmd.Context())
			if err != nil {
				cli.Error("backend unreachable at %s: %v\n", config.APIHost, err)
				return
			}
			cli.Detail("backend %s: %s\n", config.APIHost, health.Status)
		},
	}
}
