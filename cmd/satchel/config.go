// Config loading for the satchel CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDBPath   = "db_path"
	cfgKeyCacheDir = "cache_dir"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error; flags may supply the
// database path on their own.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveConfig combines flags and config.yaml into the effective Config.
// Precedence per value: flag > config.yaml.
func resolveConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		DBPath:   flags.dbPath,
		CacheDir: flags.cacheDir,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = v.GetString(cfgKeyDBPath)
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = v.GetString(cfgKeyCacheDir)
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("%w (run \"satchel init --db <settings.db>\" or pass --db)", err)
	}
	return cfg, nil
}
