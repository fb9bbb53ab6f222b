package cmd

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hiraku/calq/internal/config"
	"github.com/hiraku/calq/internal/log"
	"github.com/hiraku/calq/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "calq",
	Short: "Interactive terminal calculator",
	Long: `Calq is an interactive calculator for arithmetic, trigonometric,
logarithmic, and power operations on double-precision numbers. It prompts
for an operation and its operands, prints the result, and repeats until
you decline to continue.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		styles := session.DefaultStyles()
		if cfg.NoColor {
			styles = session.PlainStyles()
		}

		sess := session.New(os.Stdin, os.Stdout, styles)
		return sess.Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the optional calq.toml and applies its log level.
func loadConfig() *config.Config {
	cfg, err := config.Load(afero.NewOsFs(), ".")
	if err != nil {
		log.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupLogging(cfg)
	return cfg
}

func setupLogging(cfg *config.Config) {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", logLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
