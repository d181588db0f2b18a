package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/PawVamp/SteamDatabaseBackend/database"
	"github.com/PawVamp/SteamDatabaseBackend/internal/config"
)

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending database migrations",
	Long: `Apply all pending database migrations to bring the schema up to date.
This command reads the database connection parameters from the config file
and applies all migrations that haven't been run yet.`,
	RunE: runMigrateUp,
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	migrator, connString, err := setupMigration(cmd)
	if err != nil {
		return err
	}

	slog.Info("Applying database migrations")
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	reportVersion(connString)
	return nil
}

// setupMigration loads the config, confirms with the user, and builds the
// migrator.
func setupMigration(cmd *cobra.Command) (database.Migrator, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config flag: %w", err)
	}
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get yes flag: %w", err)
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	connString, err := cfg.Database.GetConnectionString()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get connection string: %w", err)
	}

	if !yes {
		slog.Info("About to migrate database",
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"database", cfg.Database.Database,
			"user", cfg.Database.User)
		fmt.Print("Continue? (yes/no): ")
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			return nil, "", fmt.Errorf("failed to read user input: %w", err)
		}
		if response != "yes" && response != "y" {
			return nil, "", fmt.Errorf("migration cancelled by user")
		}
	}

	migrator, err := database.NewFromConnectionString(connString)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create migrator: %w", err)
	}
	return migrator, connString, nil
}

func reportVersion(connString string) {
	version, dirty, err := database.GetVersion(connString)
	switch {
	case err != nil:
		slog.Warn("Unable to get migration version", "error", err)
	case dirty:
		slog.Warn("Database is in a dirty state", "version", version)
	default:
		slog.Info("Migrations applied successfully", "version", version)
	}
}
