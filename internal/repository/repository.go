package repository

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"arte-cultura-backend/internal/infra/storage"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrValidation marks failures caught before any store call.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate is returned when a subscription email already exists.
	ErrDuplicate = errors.New("duplicate subscription")
)

// Upload is a local file pending upload to blob storage.
type Upload struct {
	Filename string
	Data     []byte
}

// ImagePolicy bounds how many images a content type carries.
type ImagePolicy struct {
	Min int
	Max int
}

var (
	ColumnImages = ImagePolicy{Min: 0, Max: 3}
	ArtistImages = ImagePolicy{Min: 1, Max: 1}
)

func (p ImagePolicy) check(count int) error {
	if count < p.Min {
		return fmt.Errorf("%w: an image is required", ErrValidation)
	}
	if count > p.Max {
		return fmt.Errorf("%w: at most %d images allowed", ErrValidation, p.Max)
	}
	return nil
}

// Content translates domain CRUD onto the store and keeps blob storage
// consistent with record state. Handles are injected once at startup.
type Content struct {
	db    *gorm.DB
	store storage.Store
}

func NewContent(db *gorm.DB, store storage.Store) *Content {
	return &Content{db: db, store: store}
}

func requireText(field string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return value, nil
}

// uploadAll pushes every file to blob storage concurrently and waits for all
// of them. Any failure aborts the owning write; blobs already uploaded by the
// same batch are not cleaned up (accepted leak).
func (r *Content) uploadAll(prefix string, files []Upload) ([]string, error) {
	urls := make([]string, len(files))
	var g errgroup.Group
	for i, f := range files {
		g.Go(func() error {
			u, err := r.store.Save(prefix, f.Filename, f.Data)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	return urls, nil
}

// removeAll purges blobs best-effort. Failures are logged and never block the
// record deletion that follows.
func (r *Content) removeAll(urls []string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := r.store.Remove(u); err != nil {
			log.Printf("⚠️ failed to remove image %s: %v", u, err)
		}
	}
}
