package types

import "path/filepath"

// DefaultCacheDirName is the icon cache directory created next to the
// settings database when no explicit cache dir is configured.
const DefaultCacheDirName = "icon_cache"

// Config holds the store location and icon cache directory. It is built
// once at startup and passed into the components that need it; there is
// no ambient global state.
type Config struct {
	DBPath   string `json:"db_path" yaml:"db_path"`
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}

// EffectiveCacheDir returns the configured cache directory, defaulting to
// an icon_cache directory beside the database file.
func (c Config) EffectiveCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(filepath.Dir(c.DBPath), DefaultCacheDirName)
}
