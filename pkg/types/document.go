package types

// Document is the parsed JSON tree for one storage row. It is schemaless:
// every key, recognized or not, lives in the map so that a
// load→mutate→persist cycle preserves content exactly. Numbers decode as
// json.Number to keep their original text across the round trip.
type Document map[string]any

// Row pairs a document with its origin row in the store. The ID is used
// only for persistence.
type Row struct {
	ID  int64
	Doc Document
}

// Keys of the nested applications section inside a document.
const (
	ApplicationsKey = "applications"
)

// Profiles returns the document's applications list, or nil when the
// applications wrapper is absent or not the expected shape. The returned
// slice aliases the document; callers must not reorder it.
func (d Document) Profiles() []any {
	section, ok := d[ApplicationsKey].(map[string]any)
	if !ok {
		return nil
	}
	list, ok := section[ApplicationsKey].([]any)
	if !ok {
		return nil
	}
	return list
}

// Handle is a stable (document, position) reference to one profile record.
// A handle never migrates across documents; structural mutations in the
// same document invalidate handles at later positions.
type Handle struct {
	Doc int // index of the owning document in load order
	Rec int // position within the document's applications list
}
