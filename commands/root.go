// Package commands defines the CLI surface.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/awtera/vrcbuild/internal/config"
	"github.com/awtera/vrcbuild/internal/presentation/interaction"
	"github.com/awtera/vrcbuild/internal/util"
	"github.com/awtera/vrcbuild/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	flagDir        string
	flagOutput     string
	flagMaxReports int
	flagSort       string
	flagDebug      bool
	flagConfig     string
)

var rootCmd = &cobra.Command{
	Use:   "vrcbuild",
	Short: "Inspect VRChat bundle build sizes from Unity Editor logs",
	Long: `vrcbuild scans Unity Editor logs for avatar and world bundle build
segments and reports the compressed size, the per-category usage and the
per-asset breakdown of each build, most recent first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		return viewer.New(cfg).Run()
	}
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Directory of .log files (default: the platform Editor log location)")
	rootCmd.PersistentFlags().IntVar(&flagMaxReports, "max-reports", 0, "Maximum number of reports to keep (default 20)")
	rootCmd.PersistentFlags().StringVar(&flagSort, "sort", "", "Entry sort order: size, name, ext or index (default size)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default ~/.config/vrcbuild/config.toml)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table, json, csv or summary")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig merges preferences and flags into a viewer config. A flag
// wins only when the user actually set it, so config-file values survive
// unset flags with non-zero defaults. The persistent flag set is consulted
// directly; it is the one cobra parses into for every subcommand.
func resolveConfig() (viewer.Config, error) {
	flags := rootCmd.PersistentFlags()
	if err := initLogging(); err != nil {
		return viewer.Config{}, err
	}

	prefs, err := config.Load(flagConfig)
	if err != nil {
		return viewer.Config{}, fmt.Errorf("cannot load config: %w", err)
	}

	cfg := viewer.Config{
		LogDir:         prefs.LogDir,
		OutputFormat:   flagOutput,
		MaxReports:     prefs.MaxReports,
		SortKey:        prefs.Sort,
		ShowCategories: prefs.ShowCategories,
		ShowFiles:      prefs.ShowFiles,
	}

	if flags.Changed("dir") {
		cfg.LogDir = config.ExpandPath(flagDir)
	}
	if flags.Changed("max-reports") {
		cfg.MaxReports = flagMaxReports
	}
	if flags.Changed("sort") {
		cfg.SortKey = flagSort
	}

	if cfg.SortKey != "" {
		if _, ok := interaction.ParseSortKey(cfg.SortKey); !ok {
			return viewer.Config{}, fmt.Errorf("unknown sort key %q (expected size, name, ext or index)", cfg.SortKey)
		}
	}
	return cfg, nil
}

// initLogging sends diagnostics to a log file so they never corrupt the
// rendered output; --debug mirrors them to the console as well.
func initLogging() error {
	level := "warn"
	if flagDebug {
		level = "debug"
	}

	logFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".vrcbuild", "logs")
		if err := os.MkdirAll(dir, 0755); err == nil {
			logFile = filepath.Join(dir, "app.log")
		}
	}

	util.InitLogger(level, logFile, flagDebug)
	return nil
}
