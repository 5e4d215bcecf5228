// Dragonet watches a block ledger, classifies each sampled outcome, and
// reports streaks of like outcomes (dragons) as they form and grow.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arwah7/dragonet/internal/config"
	"github.com/arwah7/dragonet/internal/logging"
	"github.com/arwah7/dragonet/internal/render"

	// Register ledger providers.
	_ "github.com/arwah7/dragonet/internal/ledger/evmrpc"
	_ "github.com/arwah7/dragonet/internal/ledger/replay"
	_ "github.com/arwah7/dragonet/internal/ledger/trongrid"
)

var version = "dev"

// Persistent flags and the configuration every command runs against.
var (
	configFlag   string
	logLevelFlag string
	noColorFlag  bool

	cfg     config.Config
	cfgPath string // resolved config file, empty when none exists on disk
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dragonet:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragonet",
	Short: "Streak analytics over block ledger outcomes",
	Long: `Dragonet samples block outcomes on configurable intervals, lays them out
as trend and bead roads, and alerts when a streak of like outcomes (a
dragon) reaches its rule's threshold or keeps growing past it.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path := configFlag
		if path == "" {
			path = os.Getenv("DRAGONET_CONFIG")
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		cfgPath = effectivePath(path)

		level := cfg.Log.Level
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logging.Init(cfg.Outputs.Stdout.Enabled, logging.ParseLevel(level))
		return nil
	},
}

// effectivePath resolves the config file this run actually reads, so the
// watch command can hot-reload rules from it. Empty when no file exists.
func effectivePath(path string) string {
	if path == "" {
		path = config.DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func renderer() *render.Renderer {
	if noColorFlag {
		return render.New(render.NoColor())
	}
	return render.New()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file (default dragonet.yaml, env DRAGONET_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}
