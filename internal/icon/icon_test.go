package icon

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My: App?", "My_App"},
		{"", "icon"},
		{"???", "icon"},
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"dash-and_word", "dash-and_word"},
		{"a/b\\c", "abc"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// writePNG writes a small image fixture and returns its path.
func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return path
}

func TestMaterialize_UnsetRecordUsesCacheRoot(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "source.png")
	cacheRoot := filepath.Join(dir, "icon_cache")
	m := New(cacheRoot, nil)

	rec := types.ProfileRecord{types.KeyName: "My: App?", types.KeyPosterPath: ""}
	target, err := m.Materialize(rec, src)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	want := filepath.Join(cacheRoot, "My_App"+Ext)
	if target != want {
		t.Errorf("target = %q, want %q", target, want)
	}
	if rec.PosterPath() != target {
		t.Errorf("posterPath = %q, want %q", rec.PosterPath(), target)
	}

	// The cache file must decode as the canonical format.
	f, err := os.Open(target)
	if err != nil {
		t.Fatalf("open target: %v", err)
	}
	defer f.Close()
	_, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode target: %v", err)
	}
	if format != "bmp" {
		t.Errorf("target format = %q, want bmp", format)
	}
}

func TestMaterialize_ExistingPosterPathRewrittenInPlace(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "source.png")
	m := New(filepath.Join(dir, "icon_cache"), nil)

	// posterPath lives outside the cache root and has a foreign extension.
	outside := filepath.Join(dir, "old_icon.png")
	rec := types.ProfileRecord{types.KeyName: "whatever", types.KeyPosterPath: outside}

	target, err := m.Materialize(rec, src)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	want := filepath.Join(dir, "old_icon"+Ext)
	if target != want {
		t.Errorf("target = %q, want extension swap at the same base %q", target, want)
	}
}

func TestMaterialize_Idempotent(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "source.png")
	m := New(filepath.Join(dir, "icon_cache"), nil)

	rec := types.ProfileRecord{types.KeyName: "app"}
	first, err := m.Materialize(rec, src)
	if err != nil {
		t.Fatalf("first Materialize failed: %v", err)
	}
	firstBytes, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first result: %v", err)
	}

	second, err := m.Materialize(rec, src)
	if err != nil {
		t.Fatalf("second Materialize failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated materialize moved the target: %q then %q", first, second)
	}
	secondBytes, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second result: %v", err)
	}
	if string(firstBytes) != string(secondBytes) {
		t.Error("repeated materialize produced different bytes")
	}
}

func TestMaterialize_DecodeFailureLeavesRecordUnchanged(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := New(filepath.Join(dir, "icon_cache"), nil)

	rec := types.ProfileRecord{types.KeyName: "app", types.KeyPosterPath: "/keep/this.bmp"}
	_, err := m.Materialize(rec, notImage)
	if !errors.Is(err, types.ErrImageDecode) {
		t.Fatalf("got %v, want ErrImageDecode", err)
	}
	if rec.PosterPath() != "/keep/this.bmp" {
		t.Errorf("posterPath changed to %q after failed decode", rec.PosterPath())
	}

	_, err = m.Materialize(rec, filepath.Join(dir, "missing.png"))
	if !errors.Is(err, types.ErrImageDecode) {
		t.Errorf("missing source: got %v, want ErrImageDecode", err)
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "source.png")
	m := New(filepath.Join(dir, "icon_cache"), nil)

	rec := types.ProfileRecord{types.KeyName: "app"}
	target, err := m.Materialize(rec, src)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	m.Clear(rec)
	if rec.PosterPath() != "" {
		t.Errorf("posterPath = %q after clear, want empty", rec.PosterPath())
	}
	// Orphan cleanup is out of scope: the cached file survives.
	if _, err := os.Stat(target); err != nil {
		t.Errorf("cached file removed by clear: %v", err)
	}
}
