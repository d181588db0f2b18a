package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PawVamp/SteamDatabaseBackend/internal/announce"
	"github.com/PawVamp/SteamDatabaseBackend/internal/api"
	"github.com/PawVamp/SteamDatabaseBackend/internal/backpressure"
	"github.com/PawVamp/SteamDatabaseBackend/internal/config"
	"github.com/PawVamp/SteamDatabaseBackend/internal/jobs"
	"github.com/PawVamp/SteamDatabaseBackend/internal/poller"
	"github.com/PawVamp/SteamDatabaseBackend/internal/steam"
	"github.com/PawVamp/SteamDatabaseBackend/internal/store"
	"github.com/PawVamp/SteamDatabaseBackend/internal/telemetry"
	"github.com/PawVamp/SteamDatabaseBackend/internal/tracker"
	"github.com/PawVamp/SteamDatabaseBackend/internal/versions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the change feed pipeline",
	Long: `Run the change feed pipeline: poll the catalog for changelists,
persist change history, refresh product metadata, and announce changes.

The command requires a configuration file (--config) specifying the
database connection and operational settings.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second

	jobExecutorCapacity  = 16
	taskExecutorCapacity = 32
)

func init() {
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")

	if err := viper.BindPFlag("config", serveCmd.Flags().Lookup("config")); err != nil {
		panic(err)
	}
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(config.WithConfigPath(viper.GetString("config")))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
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

	track := tracker.New(cfg.GetStatePath(), db)
	if err := track.Load(ctx); err != nil {
		return fmt.Errorf("failed to recover feed position: %w", err)
	}

	meterProvider, err := telemetry.NewMeterProvider(versions.Version)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	metrics, err := telemetry.NewPollMetrics(meterProvider)
	if err != nil {
		return fmt.Errorf("failed to create poll metrics: %w", err)
	}

	jobsExec := jobs.NewExecutor("jobs", jobExecutorCapacity)
	tasksExec := jobs.NewExecutor("tasks", taskExecutorCapacity)

	var productInfoGauge backpressure.Gauge

	// TODO: replace with the real PICS transport once one lands.
	client := steam.NewUnavailableClient()
	tokenCache := steam.NewTokenCache()
	fetcher := steam.NewFetcher(client, tokenCache, &productInfoGauge)

	announcer := announce.New(announce.NewLogSink(), db,
		announce.WithImportant(cfg.ImportantApps, cfg.ImportantSubs))

	feed := poller.New(client, track, db, jobsExec, tasksExec, fetcher, announcer,
		cfg.QueryStoreEnabled, poller.WithMetrics(metrics))

	httpServer := api.NewServer(cfg.GetHTTPAddress())
	go func() {
		slog.Info("Serving health and metrics", "address", cfg.GetHTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	feed.StartTick(ctx)

	<-ctx.Done()
	slog.Info("Shutting down")

	feed.StopTick()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}

	// Let in-flight fan-out drain before the pool closes.
	jobsExec.Wait()
	tasksExec.Wait()
	return nil
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	connString, err := cfg.Database.GetConnectionString()
	if err != nil {
		return nil, fmt.Errorf("failed to build connection string: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxOpenConns
	}
	lifetime, err := cfg.Database.GetConnMaxLifetime()
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = lifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
