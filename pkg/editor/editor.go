// Package editor provides the public API for profile editing sessions
// while keeping implementation details internal.
package editor

import (
	"log/slog"

	"github.com/mesh-intelligence/satchel/internal/editor"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Open loads every row of the configured store and returns an editing
// session over it.
//
// Example:
//
//	session, err := editor.Open(types.Config{
//	    DBPath: "/path/to/settings.db",
//	}, nil)
func Open(cfg types.Config, logger *slog.Logger) (types.Editor, error) {
	s, err := editor.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}
