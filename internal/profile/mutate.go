package profile

import "github.com/mesh-intelligence/satchel/pkg/types"

// Update writes the editable fields into the referenced record in place.
// Every other key in the record is untouched. Path well-formedness is not
// validated at this layer.
func (a *Arena) Update(h types.Handle, f types.Fields) error {
	rec, err := a.Resolve(h)
	if err != nil {
		return err
	}
	rec.SetName(f.Name)
	rec.SetApplicationPath(f.ApplicationPath)
	rec.SetPosterPath(f.PosterPath)
	return nil
}

// Add appends a record built from the template to the end of the target
// document's applications list, materializing the wrapper objects when
// absent. A wrapper holding a non-list value is treated as empty and
// replaced. The caller names the document; there is no default routing.
func (a *Arena) Add(doc int, t types.Template) (types.Handle, error) {
	if len(a.rows) == 0 {
		return types.Handle{}, types.ErrNoDocuments
	}
	if doc < 0 || doc >= len(a.rows) {
		return types.Handle{}, types.ErrNotFound
	}

	d := a.rows[doc].Doc
	section, ok := d[types.ApplicationsKey].(map[string]any)
	if !ok {
		section = map[string]any{}
		d[types.ApplicationsKey] = section
	}
	list, _ := section[types.ApplicationsKey].([]any)
	list = append(list, map[string]any(t.Record()))
	section[types.ApplicationsKey] = list

	return types.Handle{Doc: doc, Rec: len(list) - 1}, nil
}

// Delete removes the referenced record from its owning document's list by
// the handle's position. Deleting by position rather than by value keeps
// value-equal duplicates in the same list distinct. Handles at later
// positions in the same document become stale.
func (a *Arena) Delete(h types.Handle) error {
	if h.Doc < 0 || h.Doc >= len(a.rows) {
		return types.ErrNotFound
	}
	d := a.rows[h.Doc].Doc
	section, ok := d[types.ApplicationsKey].(map[string]any)
	if !ok {
		return types.ErrNotFound
	}
	list, ok := section[types.ApplicationsKey].([]any)
	if !ok || h.Rec < 0 || h.Rec >= len(list) {
		return types.ErrNotFound
	}
	section[types.ApplicationsKey] = append(list[:h.Rec], list[h.Rec+1:]...)
	return nil
}
