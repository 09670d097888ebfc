// Package icon materializes profile icons: it decodes an arbitrary source
// image, re-encodes it into the canonical cache format, and links the
// result back to the profile record.
package icon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Ext is the canonical cache extension. Every materialized icon is
// normalized to BMP regardless of the source encoding.
const Ext = ".bmp"

// fallbackName is used when sanitizing a profile name leaves nothing.
const fallbackName = "icon"

var unsafeChars = regexp.MustCompile(`[^\w\s-]`)

// Sanitize turns a profile name into a cache file base name: every
// character that is not a word character, space, or hyphen is stripped,
// the result is trimmed, and spaces become underscores.
func Sanitize(name string) string {
	s := unsafeChars.ReplaceAllString(name, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	if s == "" {
		return fallbackName
	}
	return s
}

// Materializer writes canonically-encoded icons under a shared cache
// directory, created on first use.
type Materializer struct {
	cacheRoot string
	log       *slog.Logger
}

// New creates a materializer rooted at the given cache directory.
func New(cacheRoot string, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{cacheRoot: cacheRoot, log: logger}
}

// Materialize decodes the source image, re-encodes it as BMP at the
// record's deterministic target path, and sets posterPath on success.
// Any failure aborts before the record is touched. The operation is
// idempotent: the same source yields the same path and the same bytes.
func (m *Materializer) Materialize(rec types.ProfileRecord, sourcePath string) (string, error) {
	img, err := decode(sourcePath)
	if err != nil {
		return "", err
	}

	target, err := m.targetPath(rec)
	if err != nil {
		return "", err
	}

	// Encode into memory first so an encoder failure cannot leave a
	// truncated file at the target.
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrImageEncode, err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrWriteFailed, target, err)
	}

	rec.SetPosterPath(target)
	m.log.Debug("materialized icon", "source", sourcePath, "target", target)
	return target, nil
}

// Clear unsets the record's icon. The previously cached file is left in
// place; orphan cleanup is out of scope.
func (m *Materializer) Clear(rec types.ProfileRecord) {
	rec.SetPosterPath("")
}

func decode(sourcePath string) (image.Image, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrImageDecode, sourcePath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrImageDecode, sourcePath, err)
	}
	return img, nil
}

// targetPath derives the cache file for the record. A non-empty
// posterPath keeps its base path with the extension swapped to the
// canonical one, wherever that file lives, so re-icon-ing one profile
// always overwrites the same file. Otherwise the sanitized name goes
// under the cache root, which is created on demand.
func (m *Materializer) targetPath(rec types.ProfileRecord) (string, error) {
	existing := strings.TrimSpace(rec.PosterPath())
	if existing != "" {
		return strings.TrimSuffix(existing, filepath.Ext(existing)) + Ext, nil
	}
	if err := os.MkdirAll(m.cacheRoot, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrCacheDir, m.cacheRoot, err)
	}
	return filepath.Join(m.cacheRoot, Sanitize(rec.Name())+Ext), nil
}
