package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Store is the blob storage used for uploaded content images. Save returns a
// stable public URL; Remove takes that same URL back as the lookup key.
type Store interface {
	Save(prefix string, filename string, data []byte) (string, error)
	Remove(rawURL string) error
}

// Local keeps blobs on disk under root, served by the app at /uploads.
type Local struct {
	root    string
	baseURL string
}

func NewLocal(root string, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the blob under <root>/<prefix>/<unixmillis>_<filename>.
func (l *Local) Save(prefix string, filename string, data []byte) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeName(filename))

	dir := filepath.Join(l.root, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}

	return l.baseURL + "/uploads/" + prefix + "/" + name, nil
}

// Remove deletes the blob a previous Save returned the URL for.
func (l *Local) Remove(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid blob url %q: %w", rawURL, err)
	}

	rel := strings.TrimPrefix(u.Path, "/uploads/")
	if rel == u.Path {
		return fmt.Errorf("not an upload url: %s", rawURL)
	}
	rel = filepath.Clean("/" + rel) // keep lookups inside the upload root

	return os.Remove(filepath.Join(l.root, rel))
}

// IsImage reports whether the blob content sniffs as an image type.
func IsImage(data []byte) bool {
	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		name = "file"
	}
	return name
}
