// Package profile flattens per-document application lists into stable
// handles and applies mutations through them. All resolution goes through
// the arena by (document, position); records are never located by value,
// so duplicate field values across entries cannot be conflated.
package profile

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Arena owns the loaded rows in load order. Handles are weak references
// into the arena: lookup only, never separate ownership.
type Arena struct {
	rows []types.Row
}

// NewArena wraps loaded rows. The arena takes ownership of the slice.
func NewArena(rows []types.Row) *Arena {
	return &Arena{rows: rows}
}

// Len returns the number of loaded documents.
func (a *Arena) Len() int {
	return len(a.rows)
}

// Row returns the row at the given load-order index.
func (a *Arena) Row(i int) (types.Row, error) {
	if i < 0 || i >= len(a.rows) {
		return types.Row{}, types.ErrNotFound
	}
	return a.rows[i], nil
}

// Build flattens every document's applications list, in load order and
// document order, into one handle per record.
func (a *Arena) Build() []types.Handle {
	var handles []types.Handle
	for di, row := range a.rows {
		for ri := range row.Doc.Profiles() {
			handles = append(handles, types.Handle{Doc: di, Rec: ri})
		}
	}
	return handles
}

// Resolve returns the record a handle points at. Returns ErrNotFound when
// the document or position no longer exists.
func (a *Arena) Resolve(h types.Handle) (types.ProfileRecord, error) {
	if h.Doc < 0 || h.Doc >= len(a.rows) {
		return nil, types.ErrNotFound
	}
	list := a.rows[h.Doc].Doc.Profiles()
	if h.Rec < 0 || h.Rec >= len(list) {
		return nil, types.ErrNotFound
	}
	rec, ok := list[h.Rec].(map[string]any)
	if !ok {
		return nil, types.ErrNotFound
	}
	return types.ProfileRecord(rec), nil
}

// DisplayOrder sorts handles by record name, case-insensitively, with
// ties kept in encounter order. Duplicate names across documents are
// expected; the stable sort keeps their relative order deterministic.
// The sorted order is a presentation artifact and is never written back.
func (a *Arena) DisplayOrder(handles []types.Handle) []types.Handle {
	sorted := make([]types.Handle, len(handles))
	copy(sorted, handles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return a.sortKey(sorted[i]) < a.sortKey(sorted[j])
	})
	return sorted
}

func (a *Arena) sortKey(h types.Handle) string {
	rec, err := a.Resolve(h)
	if err != nil {
		return ""
	}
	return strings.ToLower(rec.Name())
}
