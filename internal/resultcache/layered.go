package resultcache

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var _ Store = (*Layered)(nil)

// Layered reads through a fast local store to a shared one. Writes and
// invalidations go to both layers.
type Layered struct {
	Local  Store
	Shared Store
}

func NewLayered(local, shared Store) *Layered {
	return &Layered{Local: local, Shared: shared}
}

func (l *Layered) Get(ctx context.Context, key string) (Entry, bool, error) {
	entry, found, err := l.Local.Get(ctx, key)
	if err != nil {
		log.Warnf("local cache get %s: %s", key, err)
	} else if found {
		return entry, true, nil
	}

	entry, found, err = l.Shared.Get(ctx, key)
	if err != nil || !found {
		return Entry{}, false, err
	}

	if err := l.Local.Put(ctx, key, entry); err != nil {
		log.Warnf("backfill local cache %s: %s", key, err)
	}
	return entry, true, nil
}

func (l *Layered) Put(ctx context.Context, key string, entry Entry) error {
	return multierr.Append(
		l.Local.Put(ctx, key, entry),
		l.Shared.Put(ctx, key, entry),
	)
}

func (l *Layered) Invalidate(ctx context.Context, key string) error {
	return multierr.Append(
		l.Local.Invalidate(ctx, key),
		l.Shared.Invalidate(ctx, key),
	)
}
