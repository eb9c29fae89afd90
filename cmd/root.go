// Package cmd provides the cmdheat CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cmdheat/internal/config"
	"cmdheat/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0"
	// BuildTime is set during build
	BuildTime = "unknown"
	// Commit is set during build
	Commit = "unknown"

	cfgFile string
	debug   bool

	// rootCmd represents the base command
	rootCmd = &cobra.Command{
		Use:   "cmdheat",
		Short: "Report your most used shell commands",
		Long: `cmdheat reads a bash or zsh history file and reports the most
frequently used commands as a proportional bar table. Commands can be
counted exactly, grouped by a fuzzy signature, or broken into per-token
heat counts.`,
		Example: `  cmdheat
  cmdheat -e -n 20
  cmdheat -t --flavor bash
  cmdheat -f ~/.zsh_history --filter docker`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize()
		},
		RunE: runReport,
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cmdheat/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

// SetVersionInfo updates the version string after variables are set
func SetVersionInfo() {
	rootCmd.Version = Version
}

// initialize performs initialization before command execution
func initialize() error {
	logCfg := logger.DefaultConfig()
	if debug {
		logCfg.Level = "debug"
	}

	if err := logger.Initialize(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.With("init")
	log.Debug("starting cmdheat", "version", Version, "commit", Commit, "build_time", BuildTime)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !debug && cfg.Logging.Level != "" {
		logger.Get().SetLevel(parseConfigLevel(cfg.Logging.Level))
	}

	return nil
}

func parseConfigLevel(level string) logger.Level {
	switch level {
	case "debug":
		return logger.DebugLevel
	case "warn", "warning":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
