package board

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/redis"
)

const cachePrefix = "config:"

// StoreSource reads configuration documents from Postgres, mirroring
// every successful read into redis. When the database is unreachable the
// redis copy serves as last-known-good, so a board keeps displaying
// something across store outages and restarts.
type StoreSource struct {
	store    db.Store
	useRedis bool
}

func NewStoreSource(store db.Store, useRedis bool) *StoreSource {
	return &StoreSource{store: store, useRedis: useRedis}
}

func (s *StoreSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	body, err := s.store.GetDocument(name)
	if err == nil {
		if s.useRedis {
			redis.Set(ctx, cachePrefix+name, body, 0)
		}
		return body, nil
	}

	// A never-written document is an empty configuration, not a failure:
	// boards read {} as "nothing scheduled".
	if errors.Is(err, db.ErrDocumentNotFound) {
		return []byte(`{}`), nil
	}

	if s.useRedis {
		if cached, cerr := redis.Get(ctx, cachePrefix+name); cerr == nil {
			log.Warn().Err(err).Str("document", name).Msg("store fetch failed, serving redis copy")
			return cached, nil
		}
	}
	return nil, err
}
