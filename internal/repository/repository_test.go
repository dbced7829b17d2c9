package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"arte-cultura-backend/internal/domain/artists"
	"arte-cultura-backend/internal/domain/columns"
	"arte-cultura-backend/internal/domain/subscriptions"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeStore records blob traffic so tests can assert on side effects.
type fakeStore struct {
	mu         sync.Mutex
	saved      map[string][]byte
	removed    []string
	failSave   bool
	failRemove bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(prefix string, filename string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return "", errors.New("blob storage unavailable")
	}
	url := fmt.Sprintf("http://cdn.test/uploads/%s/%d_%s", prefix, len(f.saved), filename)
	f.saved[url] = data
	return url, nil
}

func (f *fakeStore) Remove(rawURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, rawURL)
	if f.failRemove {
		return errors.New("blob missing")
	}
	delete(f.saved, rawURL)
	return nil
}

func (f *fakeStore) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func testRepo(t *testing.T) (*Content, *fakeStore) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&columns.OpinionColumn{},
		&artists.ArtistProfile{},
		&subscriptions.Subscription{},
	))

	store := newFakeStore()
	return NewContent(db, store), store
}

func upload(name string) Upload {
	return Upload{Filename: name, Data: []byte("image-bytes")}
}
