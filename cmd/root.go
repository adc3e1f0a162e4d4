package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/checkup/internal/config"
	"github.com/abhisek/checkup/internal/logging"
	"github.com/abhisek/checkup/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "checkup",
	Short: "Structure & Profit Check-up",
	Long:  "Checkup is a twelve-question terminal quiz that scores a retail business on leadership, culture, margin and process, and books a strategy session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHECKUP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides CHECKUP_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write debug logs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(submissionsCmd)
	rootCmd.AddCommand(deliveriesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default one,
// and applies --db on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path (--db flag or
// CHECKUP_DB), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// env bundles what every command needs.
type env struct {
	cfg    *config.Config
	dbPath string
	store  *store.Store
	logger *zap.Logger
}

// openEnv loads config, builds the file logger and opens the store.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = logging.PathFor(dbPath)
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: logFile, Verbose: verbose})
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath, logger.Named("store"))
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &env{cfg: cfg, dbPath: dbPath, store: st, logger: logger}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close store", zap.Error(err))
	}
	_ = e.logger.Sync()
}
