package board

import (
	"context"
	"fmt"
)

// Document names the scheduler polls. They match the config files the
// admin panel edits.
const (
	DocPrayerTimes    = "prayer-times"
	DocMosqueDetail   = "mosque-detail"
	DocEidTiming      = "eid-timing"
	DocTaraweehTiming = "taraweeh-timing"

	// theme documents are served to boards but never drive scheduling
	DocThemes      = "themes"
	DocActiveTheme = "active-theme"
)

// PolledDocs is every document the scheduler keeps fresh, in poll order.
var PolledDocs = []string{DocPrayerTimes, DocMosqueDetail, DocEidTiming, DocTaraweehTiming}

// ConfigSource fetches a named configuration document as raw JSON.
// Implementations: the Postgres store, the Redis last-known-good wrapper,
// and the fixed in-memory source used by tests. A fetch error is
// non-fatal; the scheduler keeps its cached copy and retries next poll.
type ConfigSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// StaticSource serves fixed documents from memory.
type StaticSource map[string][]byte

func (s StaticSource) Fetch(_ context.Context, name string) ([]byte, error) {
	doc, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("document %q not found", name)
	}
	return doc, nil
}
