// Package editor implements the profile editing session: the façade UI
// collaborators use to list, edit, and save launcher profiles. The UI
// never touches documents directly; every mutation goes through the
// session's arena.
package editor

import (
	"log/slog"

	"github.com/mesh-intelligence/satchel/internal/icon"
	"github.com/mesh-intelligence/satchel/internal/profile"
	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Compile-time interface check: Session must implement Editor.
var _ types.Editor = (*Session)(nil)

// Session owns the documents it loaded. Execution is single-threaded and
// run-to-completion; mutations act on in-memory state only, and Save
// persists one owning document explicitly.
type Session struct {
	cfg   types.Config
	store *sqlite.Store
	icons *icon.Materializer
	log   *slog.Logger

	arena   *profile.Arena
	display []types.Handle
}

// Open validates the config, loads every row, and builds the profile
// index. Undecodable rows are skipped during load, not surfaced.
func Open(cfg types.Config, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		cfg:   cfg,
		store: sqlite.New(cfg, logger),
		icons: icon.New(cfg.EffectiveCacheDir(), logger),
		log:   logger,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload discards in-memory state and re-reads every row from the store.
// All previously issued handles become stale.
func (s *Session) Reload() error {
	rows, err := s.store.Load()
	if err != nil {
		return err
	}
	s.arena = profile.NewArena(rows)
	s.refresh()
	s.log.Debug("session loaded", "documents", s.arena.Len(), "profiles", len(s.display))
	return nil
}

// refresh rebuilds the display ordering from the arena's current state.
func (s *Session) refresh() {
	s.display = s.arena.DisplayOrder(s.arena.Build())
}

// Documents returns the number of loaded documents.
func (s *Session) Documents() int {
	return s.arena.Len()
}

// ListProfiles returns every profile in display order.
func (s *Session) ListProfiles() []types.Entry {
	entries := make([]types.Entry, 0, len(s.display))
	for _, h := range s.display {
		rec, err := s.arena.Resolve(h)
		if err != nil {
			continue
		}
		entries = append(entries, types.Entry{Handle: h, DisplayName: rec.Name()})
	}
	return entries
}

// GetFields reads the editable fields of the referenced record.
func (s *Session) GetFields(h types.Handle) (types.Fields, error) {
	rec, err := s.arena.Resolve(h)
	if err != nil {
		return types.Fields{}, err
	}
	return types.Fields{
		Name:            rec.Name(),
		ApplicationPath: rec.ApplicationPath(),
		PosterPath:      rec.PosterPath(),
	}, nil
}

// SetFields writes the editable fields into the referenced record.
func (s *Session) SetFields(h types.Handle, f types.Fields) error {
	if err := s.arena.Update(h, f); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// AddProfile appends the template to the first loaded document. This is a
// convenience for single-row stores; multi-row callers should use
// AddProfileTo.
func (s *Session) AddProfile(t types.Template) (types.Handle, error) {
	return s.AddProfileTo(0, t)
}

// AddProfileTo appends the template to the document at the given
// load-order index.
func (s *Session) AddProfileTo(doc int, t types.Template) (types.Handle, error) {
	h, err := s.arena.Add(doc, t)
	if err != nil {
		return types.Handle{}, err
	}
	s.refresh()
	return h, nil
}

// DeleteProfile removes the referenced record by position. Handles at
// later positions in the same document become stale.
func (s *Session) DeleteProfile(h types.Handle) error {
	if err := s.arena.Delete(h); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// SetIcon materializes the source image for the referenced record and
// returns the new posterPath.
func (s *Session) SetIcon(h types.Handle, sourcePath string) (string, error) {
	rec, err := s.arena.Resolve(h)
	if err != nil {
		return "", err
	}
	return s.icons.Materialize(rec, sourcePath)
}

// ClearIcon unsets the referenced record's posterPath.
func (s *Session) ClearIcon(h types.Handle) error {
	rec, err := s.arena.Resolve(h)
	if err != nil {
		return err
	}
	s.icons.Clear(rec)
	return nil
}

// Save persists the owning document of the handle back to its row. Only
// that document is written; sibling rows are untouched. Save remains
// valid after DeleteProfile(h) because it keys on the document, not the
// record.
func (s *Session) Save(h types.Handle) error {
	row, err := s.arena.Row(h.Doc)
	if err != nil {
		return err
	}
	return s.store.Persist(row.ID, row.Doc)
}
