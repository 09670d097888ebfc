package types

import "testing"

func TestProfileRecord_Defaults(t *testing.T) {
	rec := ProfileRecord{}

	if got := rec.Name(); got != "" {
		t.Errorf("Name on empty record = %q, want empty", got)
	}
	if got := rec.ApplicationPath(); got != "" {
		t.Errorf("ApplicationPath on empty record = %q, want empty", got)
	}
	if got := rec.PosterPath(); got != "" {
		t.Errorf("PosterPath on empty record = %q, want empty", got)
	}
	if rec.IsCustom() {
		t.Error("IsCustom on empty record = true, want false")
	}
}

func TestProfileRecord_NonStringFieldReadsEmpty(t *testing.T) {
	rec := ProfileRecord{KeyName: 42, KeyIsCustom: "yes"}

	if got := rec.Name(); got != "" {
		t.Errorf("Name over non-string value = %q, want empty", got)
	}
	if rec.IsCustom() {
		t.Error("IsCustom over non-bool value = true, want false")
	}
}

func TestProfileRecord_SettersPreservePassengers(t *testing.T) {
	rec := ProfileRecord{
		KeyName:     "old",
		"commands":  []any{"a", "b"},
		"detection": map[string]any{"kind": "exe"},
	}

	rec.SetName("new")
	rec.SetApplicationPath(`C:\Games\game.exe`)
	rec.SetPosterPath("/cache/new.bmp")

	if got := rec.Name(); got != "new" {
		t.Errorf("Name = %q, want new", got)
	}
	if _, ok := rec["commands"]; !ok {
		t.Error("passenger key commands was dropped")
	}
	if _, ok := rec["detection"]; !ok {
		t.Error("passenger key detection was dropped")
	}
}

func TestTemplate_Record(t *testing.T) {
	tpl := Template{
		Name:            "New Entry",
		ApplicationPath: "/bin/app",
		ApplicationID:   "abc-123",
		IsCustom:        true,
	}

	rec := tpl.Record()
	if got := rec.Name(); got != "New Entry" {
		t.Errorf("Name = %q", got)
	}
	if got := rec.ApplicationID(); got != "abc-123" {
		t.Errorf("ApplicationID = %q", got)
	}
	if !rec.IsCustom() {
		t.Error("IsCustom = false, want true")
	}
	if got := rec.PosterPath(); got != "" {
		t.Errorf("PosterPath = %q, want empty", got)
	}
	if len(rec) != 5 {
		t.Errorf("record has %d keys, want the 5 template fields", len(rec))
	}
}

func TestDocument_Profiles(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want int
	}{
		{"missing wrapper", Document{}, 0},
		{"wrapper not an object", Document{ApplicationsKey: "nope"}, 0},
		{"list missing", Document{ApplicationsKey: map[string]any{}}, 0},
		{"list not a list", Document{ApplicationsKey: map[string]any{ApplicationsKey: 7}}, 0},
		{"two entries", Document{ApplicationsKey: map[string]any{
			ApplicationsKey: []any{map[string]any{}, map[string]any{}},
		}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.doc.Profiles()); got != tt.want {
				t.Errorf("Profiles() returned %d entries, want %d", got, tt.want)
			}
		})
	}
}
