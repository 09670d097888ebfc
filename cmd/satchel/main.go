// Package main provides the satchel CLI: a launcher profile store editor.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dbPath    string
	cacheDir  string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "satchel",
		Short: "Edit launcher profiles stored in a settings database",
		Long: "Satchel edits application-launcher profile entries persisted as JSON\n" +
			"documents in a single-table settings database, including their cached icons.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(flags.verbose)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "settings database path (overrides config)")
	root.PersistentFlags().StringVar(&flags.cacheDir, "cache-dir", "", "icon cache directory (default: icon_cache beside the database)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newIconCmd())
	root.AddCommand(newClearIconCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// initLogging installs a text handler on stderr. Row-skip warnings stay
// visible by default; --verbose adds debug detail.
func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
