package types

import (
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	if err := (Config{}).Validate(); err != ErrDBPathEmpty {
		t.Errorf("empty config: got %v, want ErrDBPathEmpty", err)
	}
	if err := (Config{DBPath: "/data/settings.db"}).Validate(); err != nil {
		t.Errorf("valid config: got %v, want nil", err)
	}
}

func TestConfig_EffectiveCacheDir(t *testing.T) {
	cfg := Config{DBPath: filepath.Join("/data", "settings.db")}
	want := filepath.Join("/data", DefaultCacheDirName)
	if got := cfg.EffectiveCacheDir(); got != want {
		t.Errorf("default cache dir = %q, want %q", got, want)
	}

	cfg.CacheDir = "/elsewhere/icons"
	if got := cfg.EffectiveCacheDir(); got != "/elsewhere/icons" {
		t.Errorf("explicit cache dir = %q, want /elsewhere/icons", got)
	}
}
