package resultcache

import (
	"context"
	"encoding/json"
)

// Store persists entries by key. Get reports a miss with found false and no error.
type Store interface {
	Get(ctx context.Context, key string) (entry Entry, found bool, err error)
	Put(ctx context.Context, key string, entry Entry) error
	Invalidate(ctx context.Context, key string) error
}

func encode(entry Entry) ([]byte, error) {
	return json.Marshal(entry)
}

func decode(raw []byte) (Entry, error) {
	var entry Entry
	err := json.Unmarshal(raw, &entry)
	return entry, err
}
