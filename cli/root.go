package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hackerrank-scraper/config"
	"hackerrank-scraper/utils"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hackerrank-scraper",
	Short: "hackerrank-scraper looks up a user's HackerRank practice leaderboard standing.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetupLogger(cfg.LogLevel)
	},
}

func Execute() {
	cfg = config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
