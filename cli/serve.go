package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"hackerrank-scraper/api"
	"hackerrank-scraper/config"
	"hackerrank-scraper/scraper/hackerrank"
	"hackerrank-scraper/services"
	"hackerrank-scraper/utils"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves GET /scrape?username=<name> over HTTP.",
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(serverOptions(cfg)).Run()
	},
}

func serverOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: slog.Default()}
		}),
		fx.Provide(
			fx.Annotate(hackerrank.NewScraper, fx.As(new(services.TrackScraper))),
			newProfileService,
			fx.Annotate(api.NewHandler, fx.From(new(*services.ProfileService))),
			api.NewEngine,
		),
		fx.Invoke(
			api.RegisterRoutes,
			runHTTPServer,
		),
	)
}

func newProfileService(cfg *config.Config, scraper services.TrackScraper) *services.ProfileService {
	return services.NewProfileService(scraper, cfg.ParallelTracks)
}

func runHTTPServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.Info("Server running on port %s", cfg.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					utils.Error("HTTP server stopped: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			utils.Info("Stopping HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
