package main

import (
	"log"

	"github.com/MyelinBots/checkinbot-go/internal/bot"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "checkinbot",
		Short: "Group check-in tracker bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bot.StartBot()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}
}
