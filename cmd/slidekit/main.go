package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"slidekit/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slidekit",
	Short: "slidekit - inspect and edit PowerPoint (.pptx) files",
	Long: `slidekit reads and writes PowerPoint presentations without PowerPoint.

It can list the shapes on each slide, read and set font colors (explicit RGB
or theme slot references, with brightness adjustments), and describe the
media a movie shape plays.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}

		zcfg := zap.NewProductionConfig()
		if cfg.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "config file path")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(watchCmd)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.slidekit.yaml"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
