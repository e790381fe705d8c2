// Package board owns the display loop for the prayer boards: it polls the
// configuration documents on a short fixed interval, skips recomputation
// when content hashes are unchanged, re-resolves the time-driven state
// every second, and emits the arbitrated DisplayState.
package board

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/arbiter"
	"github.com/Noor-Digital-LLC/minaret/internal/astro"
	"github.com/Noor-Digital-LLC/minaret/internal/clock"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/schedule"
	"github.com/Noor-Digital-LLC/minaret/internal/timeutil"
)

const (
	// PollInterval is how often documents are re-fetched. Short enough
	// that edits reach the boards quickly, no backoff on failure.
	PollInterval = 5 * time.Second
	// TickInterval drives the time-based recomputation, which must run
	// regardless of whether any document changed.
	TickInterval = time.Second
	// fadeOut is the cosmetic grace the renderer gets to play its
	// transition when an overlay drops. Not state-bearing.
	fadeOut = 1500 * time.Millisecond
	// rotationPanels counts the cycling secondary panels (sun, zawaal,
	// ghuroob, chasht, awwabin, tahajjud, sehri, iftar).
	rotationPanels = 8
)

// Sink receives state transitions; the MQTT publisher implements it.
type Sink interface {
	Publish(state model.DisplayState)
}

// Scheduler is the single control flow mutating display state. Run owns
// one goroutine; State reads a snapshot under the lock.
type Scheduler struct {
	src  ConfigSource
	clk  clock.Clock
	sink Sink

	mu     sync.RWMutex
	hashes map[string]uint64

	timings  model.PrayerTimes
	mosque   model.MosqueDetail
	eid      model.EidTiming
	taraweeh model.TaraweehTiming

	haveTimings bool
	haveMosque  bool

	beeps []model.BeepCue

	sunStale bool
	sunDate  string
	sun      astro.Windows
	haveSun  bool

	fadeUntil   time.Time
	lastOverlay model.OverlayTag

	state model.DisplayState
}

func New(src ConfigSource, clk clock.Clock, sink Sink) *Scheduler {
	return &Scheduler{
		src:         src,
		clk:         clk,
		sink:        sink,
		hashes:      make(map[string]uint64),
		lastOverlay: model.OverlayNormal,
	}
}

// Run polls and ticks until ctx is cancelled. Within one iteration the
// fetch completes (or fails) before derived state is recomputed, and no
// two iterations overlap.
func (s *Scheduler) Run(ctx context.Context) {
	poll := time.NewTicker(PollInterval)
	tick := time.NewTicker(TickInterval)
	defer poll.Stop()
	defer tick.Stop()

	s.Poll(ctx)
	s.Tick()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("board scheduler stopped")
			return
		case <-poll.C:
			s.Poll(ctx)
		case <-tick.C:
			s.Tick()
		}
	}
}

// Poll re-fetches every document, decoding only the ones whose content
// hash moved. Fetch failure keeps the last-known-good copy indefinitely.
func (s *Scheduler) Poll(ctx context.Context) {
	for _, name := range PolledDocs {
		raw, err := s.src.Fetch(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("document", name).Msg("config fetch failed, keeping cached copy")
			continue
		}
		sum := xxhash.Sum64(raw)

		s.mu.Lock()
		if prev, ok := s.hashes[name]; ok && prev == sum {
			s.mu.Unlock()
			continue
		}
		if err := s.decode(name, raw); err != nil {
			log.Error().Err(err).Str("document", name).Msg("config document malformed, keeping cached copy")
			s.mu.Unlock()
			continue
		}
		s.hashes[name] = sum
		log.Info().Str("document", name).Msg("config document updated")
		s.mu.Unlock()
	}
}

// decode is called under the lock with a changed document.
func (s *Scheduler) decode(name string, raw []byte) error {
	switch name {
	case DocPrayerTimes:
		var doc model.PrayerTimes
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		s.timings = doc
		s.haveTimings = true
		s.beeps = beepCues(doc)
		// sun windows depend on the override times
		s.sunStale = true
	case DocMosqueDetail:
		var doc model.MosqueDetail
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		s.mosque = doc
		s.haveMosque = true
		s.sunStale = true
	case DocEidTiming:
		var doc model.EidTiming
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		s.eid = doc
	case DocTaraweehTiming:
		var doc model.TaraweehTiming
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		s.taraweeh = doc
	}
	return nil
}

// Tick recomputes the time-driven state and publishes it on change.
func (s *Scheduler) Tick() {
	now := s.clk.Now()

	s.mu.Lock()
	s.refreshSun(now)
	next := s.resolve(now)

	changed := statesDiffer(s.state, next)
	s.state = next
	s.mu.Unlock()

	if changed && s.sink != nil {
		s.sink.Publish(next)
	}
}

// State returns the last resolved display state.
func (s *Scheduler) State() model.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// refreshSun recomputes the solar windows when the calendar date rolled
// or a document they depend on changed. Held under the lock.
func (s *Scheduler) refreshSun(now time.Time) {
	if !s.haveMosque {
		return
	}
	date := now.Format("2006-01-02")
	if !s.sunStale && date == s.sunDate {
		return
	}
	ov := astro.Overrides{
		MaghribJamat: s.timings.MaghribJamat,
		IshaAzaan:    s.timings.IshaAzaan,
		FajrAzaan:    s.timings.FajrAzaan,
	}
	w, err := astro.ForDate(now, s.mosque.Latitude, s.mosque.Longitude, ov)
	if err != nil {
		log.Error().Err(err).
			Float64("lat", s.mosque.Latitude).
			Float64("lon", s.mosque.Longitude).
			Msg("solar computation failed")
		s.haveSun = false
		return
	}
	s.sun = w
	s.haveSun = true
	s.sunDate = date
	s.sunStale = false
}

// resolve computes the full display state for one instant from the cached
// documents. Pure given (cached documents, now) apart from the fade-out
// bookkeeping; calling it twice with identical inputs yields an identical
// state.
func (s *Scheduler) resolve(now time.Time) model.DisplayState {
	st := model.DisplayState{
		Overlay:    model.OverlayNormal,
		Mosque:     s.mosque.Name,
		PanelIndex: PanelIndex(now),
		Beeps:      s.beeps,
	}

	var day schedule.Day
	maghrib, ishaEnd := -1, -1
	if s.haveTimings {
		day = schedule.Resolve(s.timings, now.Weekday())
		nowMin := timeutil.MinuteOfDay(now)

		if name, ok := schedule.ActivePrayer(day, nowMin); ok {
			st.ActivePrayer = name
		}
		nextSlot, _ := schedule.NextPrayer(day, nowMin)
		if nextSlot.Azaan >= 0 {
			st.Next = model.NextPrayer{
				Name:  nextSlot.Name,
				Azaan: timeutil.FormatMinutes(nextSlot.Azaan),
				Jamat: timeutil.FormatMinutes(nextSlot.Jamat),
			}
		}

		if m, err := timeutil.ToMinutes(s.timings.MaghribAzaan); err == nil {
			maghrib = m
		}
		if i, err := timeutil.ToMinutes(s.timings.IshaJamat); err == nil {
			ishaEnd = i
		}
	}

	if s.haveSun {
		st.Sun = s.sun.SunTimes()
	}

	eidState := arbiter.EvalEid(s.eid, now)
	taraweehState := arbiter.EvalTaraweeh(s.taraweeh, now, maghrib, ishaEnd)

	var dua bool
	if s.haveTimings {
		dua = arbiter.EvalDua(day.JamatTimes(), timeutil.MinuteOfDay(now), taraweehState.Showing)
	}

	st.Overlay = arbiter.Decide(arbiter.Inputs{
		Eid:      eidState,
		Taraweeh: taraweehState,
		Dua:      dua,
	})

	if eidState == arbiter.EidAnnouncing || eidState == arbiter.EidCelebrating {
		eid := s.eid
		st.Eid = &eid
	}
	if taraweehState.InRange {
		st.Taraweeh = &model.TaraweehInfo{
			Upcoming: taraweehState.Upcoming,
			Time:     s.taraweeh.Time,
		}
		if !taraweehState.Upcoming && !taraweehState.Showing {
			st.Ashra = arbiter.AshraFor(s.taraweeh, now)
		}
	}

	// The fade-out stamp gives renderers their transition window when an
	// overlay drops; it is advisory and never blocks channel evaluation.
	if s.lastOverlay != model.OverlayNormal && st.Overlay != s.lastOverlay {
		s.fadeUntil = now.Add(fadeOut)
	}
	s.lastOverlay = st.Overlay
	if now.Before(s.fadeUntil) {
		t := s.fadeUntil
		st.FadeOutUntil = &t
	}

	return st
}

// PanelIndex picks which secondary panel is visible, derived from the
// wall clock in five-second steps so every board agrees without
// coordination.
func PanelIndex(now time.Time) int {
	return (now.Minute()*12 + now.Second()/5) % rotationPanels
}

// beepCues lists the day's audible-cue instants from the timings
// document, skipping unparseable entries.
func beepCues(doc model.PrayerTimes) []model.BeepCue {
	pairs := []struct{ label, t string }{
		{"FAJR_AZAAN", doc.FajrAzaan}, {"FAJR_JAMAT", doc.FajrJamat},
		{"ZUHAR_AZAAN", doc.ZuharAzaan}, {"ZUHAR_JAMAT", doc.ZuharJamat},
		{"ASR_AZAAN", doc.AsrAzaan}, {"ASR_JAMAT", doc.AsrJamat},
		{"MAGHRIB_AZAAN", doc.MaghribAzaan}, {"MAGHRIB_JAMAT", doc.MaghribJamat},
		{"ISHA_AZAAN", doc.IshaAzaan}, {"ISHA_JAMAT", doc.IshaJamat},
		{"JUMAH_AZAAN", doc.JumahAzaan}, {"JUMAH_JAMAT", doc.JumahJamat},
	}
	cues := make([]model.BeepCue, 0, len(pairs))
	for _, p := range pairs {
		if m, err := timeutil.ToMinutes(p.t); err == nil {
			cues = append(cues, model.BeepCue{Label: p.label, At: timeutil.FormatMinutes(m)})
		}
	}
	return cues
}

// statesDiffer ignores the per-second panel rotation so the sink only
// hears about meaningful transitions.
func statesDiffer(a, b model.DisplayState) bool {
	a.PanelIndex, b.PanelIndex = 0, 0
	a.FadeOutUntil, b.FadeOutUntil = nil, nil
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	return xxhash.Sum64(aj) != xxhash.Sum64(bj)
}
