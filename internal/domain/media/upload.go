package media

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var ErrUnknownKind = errors.New("unknown upload kind")

// Kinds maps the upload kind to the directory its files live under.
var Kinds = map[string]string{
	"avatar": "avatar",
	"person": "person",
	"poster": "poster",
	"film":   "film",
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// cleanName keeps only the base name and replaces anything outside
// [a-zA-Z0-9._-] with an underscore.
func cleanName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Trim(unsafeName.ReplaceAllString(base, "_"), "._")
	if base == "" {
		return "upload"
	}
	return base
}

// UploadPath returns the reference stored on the record:
// <kind>/YYYY/MM/DD/<name>, always with forward slashes.
func UploadPath(kind, filename string, now time.Time) (string, error) {
	dir, ok := Kinds[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return path.Join(dir, now.Format("2006/01/02"), cleanName(filename)), nil
}

// FreePath returns rel, or rel with a numeric suffix before the extension,
// so that no existing file under root is overwritten.
func FreePath(root, rel string) (string, error) {
	ext := path.Ext(rel)
	stem := strings.TrimSuffix(rel, ext)
	candidate := rel
	for n := 2; ; n++ {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(candidate)))
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
}
