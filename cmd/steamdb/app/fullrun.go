package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PawVamp/SteamDatabaseBackend/internal/backpressure"
	"github.com/PawVamp/SteamDatabaseBackend/internal/config"
	"github.com/PawVamp/SteamDatabaseBackend/internal/dispatch"
	"github.com/PawVamp/SteamDatabaseBackend/internal/jobs"
	"github.com/PawVamp/SteamDatabaseBackend/internal/resync"
	"github.com/PawVamp/SteamDatabaseBackend/internal/steam"
	"github.com/PawVamp/SteamDatabaseBackend/internal/store"
)

var fullRunCmd = &cobra.Command{
	Use:   "fullrun",
	Short: "Resynchronize the full catalog",
	Long: `Resynchronize the full catalog under the configured enumeration
strategy. Identifier batches are throttled by the backpressure gate so the
token and metadata endpoints are never overwhelmed.`,
	RunE: runFullRun,
}

func init() {
	fullRunCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	fullRunCmd.Flags().String("mode", "", "Enumeration strategy override (full, enumerate, tokens-only, packages-normal, forced-depots)")

	if err := fullRunCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runFullRun(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	mode, err := cfg.GetFullRunMode()
	if err != nil {
		return err
	}
	if override, _ := cmd.Flags().GetString("mode"); override != "" {
		mode, err = resync.ParseMode(override)
		if err != nil {
			return err
		}
	}

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	db, err := store.NewPostgres(pool)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	jobsExec := jobs.NewExecutor("jobs", jobExecutorCapacity)
	tasksExec := jobs.NewExecutor("tasks", taskExecutorCapacity)

	var productInfoGauge, depotLockGauge backpressure.Gauge
	gate := backpressure.NewGate(tasksExec, jobsExec, &productInfoGauge, &depotLockGauge)

	// TODO: replace with the real PICS transport once one lands.
	client := steam.NewUnavailableClient()
	tokenCache := steam.NewTokenCache()
	fetcher := steam.NewFetcher(client, tokenCache, &productInfoGauge)

	dispatcher := dispatch.New(gate, jobsExec, fetcher)
	enumerator := resync.New(mode, db, tokenCache, dispatcher)

	if err := enumerator.Run(ctx); err != nil {
		return fmt.Errorf("full run failed: %w", err)
	}

	jobsExec.Wait()
	tasksExec.Wait()
	slog.Info("Full run complete", "mode", string(mode))
	return nil
}
