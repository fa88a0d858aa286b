package resultcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

var _ Store = (*LocalStore)(nil)

// LocalStore keeps entries in process memory.
type LocalStore struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// NewLocalStore creates a store of sizeMB megabytes. A zero ttl never expires.
func NewLocalStore(sizeMB int, ttl time.Duration) *LocalStore {
	return &LocalStore{
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   ttl,
	}
}

func (s *LocalStore) Get(_ context.Context, key string) (Entry, bool, error) {
	raw, err := s.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("local cache get %s: %w", key, err)
	}

	entry, err := decode(raw)
	if err != nil {
		log.Errorf("failed to decode local cache entry %s: %s", key, err)
		s.cache.Del([]byte(key))
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (s *LocalStore) Put(_ context.Context, key string, entry Entry) error {
	raw, err := encode(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", key, err)
	}
	if err := s.cache.Set([]byte(key), raw, int(s.ttl.Seconds())); err != nil {
		return fmt.Errorf("local cache set %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Invalidate(_ context.Context, key string) error {
	s.cache.Del([]byte(key))
	return nil
}

func (s *LocalStore) EntryCount() int64 {
	return s.cache.EntryCount()
}
