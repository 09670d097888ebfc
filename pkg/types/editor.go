package types

// Entry is one row of the profile listing: a handle plus the name shown
// for it.
type Entry struct {
	Handle      Handle
	DisplayName string
}

// Fields are the editable fields of a profile record.
type Fields struct {
	Name            string
	ApplicationPath string
	PosterPath      string
}

// Editor is the façade consumed by UI collaborators. All mutations act on
// in-memory state; Save persists a single owning document explicitly.
type Editor interface {
	// ListProfiles returns every profile across all loaded documents in
	// display order (case-insensitive by name, ties in encounter order).
	ListProfiles() []Entry

	// GetFields reads the editable fields of the referenced record.
	// Returns ErrNotFound if the handle is stale.
	GetFields(h Handle) (Fields, error)

	// SetFields writes the editable fields into the referenced record,
	// leaving all other keys untouched.
	SetFields(h Handle, f Fields) error

	// AddProfile appends a record built from the template to the first
	// loaded document. Returns ErrNoDocuments when the store is empty.
	// The first-document policy is a single-row-store convenience; use
	// AddProfileTo to target a document explicitly.
	AddProfile(t Template) (Handle, error)

	// AddProfileTo appends a record built from the template to the
	// document at the given load-order index.
	AddProfileTo(doc int, t Template) (Handle, error)

	// DeleteProfile removes the referenced record from its owning
	// document by position, never by value.
	DeleteProfile(h Handle) error

	// SetIcon materializes the source image into the icon cache and
	// points the record's posterPath at the result.
	SetIcon(h Handle, sourcePath string) (string, error)

	// ClearIcon unsets the record's posterPath. The cached file is not
	// deleted.
	ClearIcon(h Handle) error

	// Save persists the owning document of the handle back to its row.
	Save(h Handle) error

	// Reload discards in-memory state and re-reads every row.
	Reload() error
}
