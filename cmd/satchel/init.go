package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DBPath   string `yaml:"db_path"`
	CacheDir string `yaml:"cache_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Record the settings database location",
		Long: "Write config.yaml with the database path, create the database when\n" +
			"missing, and create the icon cache directory.",
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if flags.dbPath == "" {
		return fmt.Errorf("--db is required: point it at the launcher's settings.db")
	}
	dbPath, err := filepath.Abs(flags.dbPath)
	if err != nil {
		return fmt.Errorf("resolve db path: %w", err)
	}

	cfg := types.Config{DBPath: dbPath, CacheDir: flags.cacheDir}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := writeConfig(filepath.Join(configDir, configFileExt), cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Create a fresh standalone database when the file does not exist.
	// An existing launcher database is left untouched.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		store := sqlite.New(cfg, slog.Default())
		if err := store.Init(); err != nil {
			return fmt.Errorf("initialize database: %w", err)
		}
	}

	if err := os.MkdirAll(cfg.EffectiveCacheDir(), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Using database %s\n", dbPath)
	return nil
}

// writeConfig replaces config.yaml with the given settings. Init is an
// explicit action, so an existing file is overwritten.
func writeConfig(path string, cfg types.Config) error {
	data, err := yaml.Marshal(configFile{DBPath: cfg.DBPath, CacheDir: cfg.CacheDir})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
