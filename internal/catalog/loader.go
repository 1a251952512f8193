package catalog

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/shinobirpg/shinobi-bot-discord/internal/errors"
)

// Loader parses rule catalogs and caches them per path. A catalog is parsed
// at most once per path for the lifetime of the Loader; concurrent callers
// for the same path share a single parse. Changes to the underlying file
// after the first load are never observed.
type Loader struct {
	mu    sync.Mutex
	group singleflight.Group
	cache map[string]*Catalog
}

// NewLoader creates an empty Loader
func NewLoader() *Loader {
	return &Loader{
		cache: make(map[string]*Catalog),
	}
}

// Load returns the catalog for path, parsing the file on the first call.
// A missing file surfaces as a not-found error, a record with a bad id as a
// validation error. Failed loads are not cached, so a later call may retry.
func (l *Loader) Load(path string) (*Catalog, error) {
	l.mu.Lock()
	if cached, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return cached, nil
	}
	l.mu.Unlock()

	value, err, _ := l.group.Do(path, func() (any, error) {
		parsed, err := loadFile(path)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[path] = parsed
		l.mu.Unlock()

		return parsed, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*Catalog), nil
}

func loadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFoundf("rule catalog not found: %s", path)
		}
		return nil, apperrors.Wrapf(err, "open rule catalog %s", path)
	}
	defer func() {
		_ = file.Close()
	}()

	return New(file)
}
