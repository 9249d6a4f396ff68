package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finchat/finchat/cli/chat"
	"github.com/finchat/finchat/cli/chats"
	"github.com/finchat/finchat/cli/files"
	"github.com/finchat/finchat/cli/status"
	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/configuration"
)

const configFilepath = "~/.config/finchat/config.json"

var rootCmd = &cobra.Command{
	Use:     "finchat",
	Short:   "A terminal client for the FinChat assistant",
	Version: "1.0",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	client := api.New(config.APIHost, time.Duration(config.RequestTimeout)*time.Second)

	rootCmd.AddCommand(chat.NewCmd(config, client))
	rootCmd.AddCommand(chats.NewCmd(client))
	rootCmd.AddCommand(files.NewCmd(config, client))
	rootCmd.AddCommand(status.NewCmd(config, client))
	rootCmd.Execute()
}
