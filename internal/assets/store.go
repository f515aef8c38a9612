// Package assets stores company-branded files (logos, banners, culture
// videos) under a per-company path prefix and serves them back by public
// URL.
package assets

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Kind segments a company's assets by purpose.
type Kind string

const (
	KindLogo   Kind = "logo"
	KindBanner Kind = "banner"
	KindVideo  Kind = "video"
)

func (k Kind) Valid() bool {
	return k == KindLogo || k == KindBanner || k == KindVideo
}

// prefix is the sub-directory per kind ("logos/", "banners/", "videos/").
func (k Kind) prefix() string { return string(k) + "s" }

// accepts reports whether the sniffed MIME type is allowed for this kind.
func (k Kind) accepts(mime *mimetype.MIME) bool {
	switch k {
	case KindLogo, KindBanner:
		return strings.HasPrefix(mime.String(), "image/")
	case KindVideo:
		return strings.HasPrefix(mime.String(), "video/")
	}
	return false
}

// Store is the object-storage collaborator consumed by the upload handlers.
type Store interface {
	// Upload writes content for the company under the kind's prefix and
	// returns the storage path and its public URL.
	Upload(ctx context.Context, companyID uuid.UUID, kind Kind, filename string, content []byte) (storagePath, publicURL string, err error)
	// Remove deletes the given storage paths. Missing paths are ignored.
	Remove(ctx context.Context, paths []string) error
	// PublicURL resolves a storage path to the URL clients fetch it from.
	PublicURL(storagePath string) string
}

// DiskStore keeps assets on the local filesystem under Dir, served by the
// router under BaseURL + "/assets/".
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *DiskStore) Upload(ctx context.Context, companyID uuid.UUID, kind Kind, filename string, content []byte) (string, string, error) {
	if !kind.Valid() {
		return "", "", fmt.Errorf("unknown asset kind %q", kind)
	}
	mime := mimetype.Detect(content)
	if !kind.accepts(mime) {
		return "", "", fmt.Errorf("%s uploads do not accept %s content", kind, mime.String())
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = mime.Extension()
	}
	storagePath := path.Join(companyID.String(), kind.prefix(), uuid.NewString()+ext)

	full := filepath.Join(d.Dir, filepath.FromSlash(storagePath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", "", err
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return "", "", err
	}
	return storagePath, d.PublicURL(storagePath), nil
}

func (d *DiskStore) Remove(ctx context.Context, paths []string) error {
	for _, p := range paths {
		rel, ok := d.relPath(p)
		if !ok {
			continue
		}
		if err := os.Remove(filepath.Join(d.Dir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (d *DiskStore) PublicURL(storagePath string) string {
	return d.BaseURL + "/assets/" + storagePath
}

// relPath accepts either a bare storage path or a full public URL and
// rejects anything that would escape the uploads dir.
func (d *DiskStore) relPath(p string) (string, bool) {
	if after, ok := strings.CutPrefix(p, d.BaseURL+"/assets/"); ok {
		p = after
	}
	clean := path.Clean("/" + p)
	if clean == "/" {
		return "", false
	}
	return strings.TrimPrefix(clean, "/"), true
}
