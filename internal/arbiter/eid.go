package arbiter

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// EidState is the Eid channel's position relative to the configured
// congregation time.
type EidState string

const (
	EidIdle        EidState = "IDLE"
	EidAnnouncing  EidState = "ANNOUNCING"
	EidCelebrating EidState = "CELEBRATING"
	EidExpired     EidState = "EXPIRED"
)

// celebrationSpan is how long the celebration screen stays up after the
// configured instant.
const celebrationSpan = 3 * time.Minute

// eidLayouts accepted for the datetime field; the admin form submits the
// first, hand-edited documents sometimes carry seconds.
var eidLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// EvalEid derives the channel state purely from (config, now). EXPIRED is
// terminal for a given configured instant: it can only leave via a new
// document, never by the clock moving on.
func EvalEid(cfg model.EidTiming, now time.Time) EidState {
	if cfg.Datetime == "" {
		return EidIdle
	}
	var at time.Time
	var err error
	for _, layout := range eidLayouts {
		at, err = time.ParseInLocation(layout, cfg.Datetime, now.Location())
		if err == nil {
			break
		}
	}
	if err != nil {
		log.Warn().Str("datetime", cfg.Datetime).Msg("ignoring malformed eid datetime")
		return EidIdle
	}

	switch {
	case now.Before(at):
		return EidAnnouncing
	case !now.After(at.Add(celebrationSpan)):
		return EidCelebrating
	default:
		return EidExpired
	}
}
