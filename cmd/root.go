package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/brightpath/internal/config"
	"github.com/abhisek/brightpath/internal/logging"
	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/session"
	"github.com/abhisek/brightpath/internal/store"
	"github.com/abhisek/brightpath/internal/subject"
)

var rootCmd = &cobra.Command{
	Use:          "brightpath",
	Short:        "Adaptive difficulty engine for kids' learning activities",
	Long:         "Brightpath tracks how a learner does in math, reading, science and art, and adapts the difficulty of the next activity.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides config and BRIGHTPATH_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/brightpath/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime bundles the dependencies a command needs.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	recorder *session.Recorder
	service  *performance.Service
}

// openRuntime loads config, builds the logger and opens the store.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, logger.Named("store"))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	recorder := session.NewRecorder(st.SessionLogRepo())
	return &runtime{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		recorder: recorder,
		service:  performance.NewService(st.ProfileRepo(), st.EventRepo(), recorder, logger.Named("performance")),
	}, nil
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("close store", zap.Error(err))
	}
	_ = r.logger.Sync()
}

// ageGroup returns the --age flag when set, else the configured learner age.
func (r *runtime) ageGroup(cmd *cobra.Command) (subject.AgeGroup, error) {
	if a, _ := cmd.Flags().GetString("age"); a != "" {
		return subject.ParseAgeGroup(a)
	}
	return r.cfg.AgeGroup(), nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then BRIGHTPATH_DB or the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}
