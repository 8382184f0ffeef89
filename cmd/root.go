package cmd

import (
	"fmt"
	"log/slog"

	"github.com/dmvnavigator/dmvnav/internal/app"
	"github.com/dmvnavigator/dmvnav/internal/bank"
	"github.com/dmvnavigator/dmvnav/internal/config"
	"github.com/dmvnavigator/dmvnav/internal/logging"
	"github.com/dmvnavigator/dmvnav/internal/screens/quiz"
	"github.com/dmvnavigator/dmvnav/internal/session"
	"github.com/dmvnavigator/dmvnav/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dmvnav",
	Short: "DMV written test practice in the terminal",
	Long:  "DMVNav: practice the driver's license written test by category or as a full shuffled test.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Question bank file, .json or SQLite (overrides DMVNAV_BANK)")
	rootCmd.PersistentFlags().String("env-file", "", "Environment file to load (default .env if present)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides DMVNAV_LOG_FILE)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Shuffle seed for reproducible sessions (overrides DMVNAV_SEED)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the env file and environment, then applies flags:
// a flag that was set beats DMVNAV_* variables, which beat defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return cfg, err
	}

	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
		cfg.HasSeed = true
	}
	return cfg, nil
}

// loadBank resolves the configured bank source.
func loadBank(cmd *cobra.Command, cfg config.Config) (*bank.Bank, error) {
	b, err := store.LoadBank(cmd.Context(), cfg.BankPath)
	if err != nil {
		if cfg.BankPath == "" {
			return nil, fmt.Errorf("load embedded bank: %w", err)
		}
		return nil, fmt.Errorf("load bank %s: %w", cfg.BankPath, err)
	}
	return b, nil
}

// runApp wires config, logging and the bank into the TUI. mode, when not
// nil, skips the home menu.
func runApp(cmd *cobra.Command, mode *session.Mode) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	b, err := loadBank(cmd, cfg)
	if err != nil {
		logger.Error("load bank", "path", cfg.BankPath, "err", err)
		return err
	}
	if mode != nil && mode.Kind == session.ModeSingleCategory && !b.HasCategory(mode.Category) {
		return fmt.Errorf("unknown category %q (see dmvnav bank list)", mode.Category)
	}

	opts := session.DefaultOptions()
	if cfg.HasSeed {
		opts = session.SeededOptions(cfg.Seed)
	}

	logger.Info("starting",
		slog.String("bank", bankLabel(cfg.BankPath)),
		slog.Int("questions", b.Len()),
		slog.Bool("seeded", cfg.HasSeed))

	return app.Run(app.Options{
		Env:       quiz.Env{Bank: b, Options: opts, Logger: logger},
		StartMode: mode,
	})
}

func bankLabel(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
