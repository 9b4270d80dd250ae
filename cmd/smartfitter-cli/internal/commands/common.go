package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/bootstrap"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

const defaultConfigPath = "configs/rest-app.yaml"

// NewRootCommand builds the smartfitter-cli command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartfitter-cli",
		Short: "SmartFitter operator tool",
		Long: `smartfitter-cli reads the same configuration file as the REST API
(--config, or CONFIG_PATH, default configs/rest-app.yaml) and lets operators
migrate the schema, review members, publish agreements and preview free slots.`,
		SilenceUsage: true,
	}

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = defaultConfigPath
	}
	rootCmd.PersistentFlags().String("config", defaultPath, "Path to the YAML configuration file")

	InitMigrateCommands(rootCmd)
	InitProfileCommands(rootCmd)
	InitDocumentCommands(rootCmd)
	InitSlotCommands(rootCmd)

	return rootCmd
}

// environment is what every command needs: configuration, a logger and the database.
type environment struct {
	cfg    *config.RestConfig
	logger logger.Logger
	store  *bootstrap.Store
}

func (e *environment) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("Failed to close database", "error", err)
	}
}

func setupEnvironment(cmd *cobra.Command) (*environment, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	store, err := bootstrap.NewStore(cfg.Database, loggerInstance)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, logger: loggerInstance, store: store}, nil
}

// The CLI always logs to the console, whatever the API is configured with.
func setupLogger(cfg *config.RestConfig) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: cfg.Logger.LogLevel,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func requiredString(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return value, nil
}
