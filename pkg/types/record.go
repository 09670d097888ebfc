package types

// Recognized profile record keys. All other keys are opaque passengers
// that mutations must leave untouched.
const (
	KeyName            = "name"
	KeyApplicationPath = "applicationPath"
	KeyPosterPath      = "posterPath"
	KeyApplicationID   = "applicationId"
	KeyIsCustom        = "isCustom"
)

// ProfileRecord is a typed view over one application entry in a document's
// applications list. The view reads and writes the recognized keys in
// place; the underlying map keeps every unrecognized key for the round
// trip. Two records with identical field values are still distinct
// entities — identity is the map, never the values.
type ProfileRecord map[string]any

func (r ProfileRecord) stringField(key string) string {
	v, _ := r[key].(string)
	return v
}

// Name returns the profile's display name, or "" when unset.
func (r ProfileRecord) Name() string { return r.stringField(KeyName) }

// ApplicationPath returns the launched executable's path, or "" when unset.
func (r ProfileRecord) ApplicationPath() string { return r.stringField(KeyApplicationPath) }

// PosterPath returns the icon path; "" means no icon is set.
func (r ProfileRecord) PosterPath() string { return r.stringField(KeyPosterPath) }

// ApplicationID returns the launcher-assigned application id, or "" when unset.
func (r ProfileRecord) ApplicationID() string { return r.stringField(KeyApplicationID) }

// IsCustom reports whether the entry was user-created.
func (r ProfileRecord) IsCustom() bool {
	v, _ := r[KeyIsCustom].(bool)
	return v
}

// SetName writes the display name into the record.
func (r ProfileRecord) SetName(name string) { r[KeyName] = name }

// SetApplicationPath writes the executable path into the record.
func (r ProfileRecord) SetApplicationPath(path string) { r[KeyApplicationPath] = path }

// SetPosterPath writes the icon path into the record. Empty clears it.
func (r ProfileRecord) SetPosterPath(path string) { r[KeyPosterPath] = path }

// Template holds the minimum fields of a new profile record.
type Template struct {
	Name            string
	ApplicationPath string
	PosterPath      string
	ApplicationID   string
	IsCustom        bool
}

// Record materializes the template as a fresh profile record.
func (t Template) Record() ProfileRecord {
	return ProfileRecord{
		KeyApplicationID:   t.ApplicationID,
		KeyApplicationPath: t.ApplicationPath,
		KeyIsCustom:        t.IsCustom,
		KeyName:            t.Name,
		KeyPosterPath:      t.PosterPath,
	}
}
