package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hackerrank-scraper/models"
	"hackerrank-scraper/scraper/hackerrank"
	"hackerrank-scraper/services"
	"hackerrank-scraper/storage"
)

var (
	csvPath   *string
	trackName *string
)

func init() {
	csvPath = lookupCmd.Flags().String("csv", "", `Write the result as CSV to this path ("-" for stdout) instead of a table.`)
	trackName = lookupCmd.Flags().String("track", "", "Scrape only this track (algorithms or data-structures).")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <username> [--csv <path>] [--track <track>]",
	Short: "Looks a user up on both leaderboard tracks and prints the result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var track models.Track
		if *trackName != "" {
			t, err := models.ParseTrack(*trackName)
			if err != nil {
				return err
			}
			if *csvPath != "" {
				return errors.New("--csv exports both tracks and cannot be combined with --track")
			}
			track = t
		}

		timeout := cfg.LaunchTimeout + cfg.NavigationTimeout + cfg.RenderTimeout
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*timeout+10*time.Second)
		defer cancel()

		svc := services.NewProfileService(hackerrank.NewScraper(cfg), cfg.ParallelTracks)
		if track != "" {
			res, err := svc.LookupTrack(ctx, args[0], track)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			services.PrintTrackReport(os.Stdout, track, res)
			return nil
		}

		resp, err := svc.Lookup(ctx, args[0])
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return err
		}

		if *csvPath != "" {
			return storage.NewCSVWriter(*csvPath).Write([]*models.ScrapeResponse{resp})
		}
		services.PrintReport(os.Stdout, resp)
		return nil
	},
}
