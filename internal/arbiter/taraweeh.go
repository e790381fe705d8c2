package arbiter

import (
	"time"

	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/timeutil"
)

// overlayDelay and overlayEnd bound the nightly fullscreen window:
// taraweeh_time+2 through taraweeh_time+5, inclusive.
const (
	overlayDelay = 2
	overlayEnd   = 5
)

// TaraweehState is the Taraweeh channel output. Showing drives the
// fullscreen overlay; Upcoming feeds the always-visible info widget for
// the rest of the Maghrib-to-Isha span on in-range days.
type TaraweehState struct {
	InRange  bool
	Showing  bool
	Upcoming bool
}

const dateLayout = "2006-01-02"

// inDateRange compares calendar dates only, both bounds inclusive. The
// document's lexicographic YYYY-MM-DD ordering makes string compare exact.
func inDateRange(now time.Time, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	today := now.Format(dateLayout)
	return today >= start && today <= end
}

// EvalTaraweeh derives the channel state from the taraweeh document and
// the day's Maghrib/Isha span. maghrib and ishaEnd are minute-of-day;
// pass negatives when the timings document lacks them.
func EvalTaraweeh(cfg model.TaraweehTiming, now time.Time, maghrib, ishaEnd int) TaraweehState {
	var st TaraweehState
	if !inDateRange(now, cfg.StartDate, cfg.EndDate) {
		return st
	}
	st.InRange = true

	nowMin := timeutil.MinuteOfDay(now)
	if t, err := timeutil.ToMinutes(cfg.Time); err == nil {
		st.Showing = nowMin >= t+overlayDelay && nowMin <= t+overlayEnd
	}
	if !st.Showing && maghrib >= 0 && ishaEnd >= 0 {
		st.Upcoming = nowMin >= maghrib && nowMin <= ishaEnd
	}
	return st
}

// ashraDuas are the devotional texts for the three ten-day segments.
var ashraDuas = [3]model.AshraDua{
	{
		Title:   "Rahmah",
		Arabic:  "يَا حَيُّ يَا قَيُّومُ بِرَحْمَتِكَ أَسْتَغيثُ",
		English: "Ya Hayyu Ya Qayyum bi rehmatika astaghees",
	},
	{
		Title:   "Maghfirah",
		Arabic:  "اَسْتَغْفِرُ اللہَ رَبِّی مِنْ کُلِّ زَنْبٍ وَّ اَتُوْبُ اِلَیْہِ",
		English: "Astagfirullaha rab-bi min kulli zambiyon wa-atoobuilaiyh",
	},
	{
		Title:   "Najat",
		Arabic:  "اَللَّهُمَّ أَجِرْنِي مِنَ النَّارِ",
		English: "Allahumma Ajirni minan naar",
	},
}

// AshraFor returns the dua of the current ten-day segment of Ramadan, or
// nil outside days 1..30. The first roza is the day after taraweeh starts.
func AshraFor(cfg model.TaraweehTiming, now time.Time) *model.AshraDua {
	start, err := time.ParseInLocation(dateLayout, cfg.StartDate, now.Location())
	if err != nil {
		return nil
	}
	firstRoza := start.AddDate(0, 0, 1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayNumber := int(today.Sub(firstRoza).Hours()/24) + 1

	switch {
	case dayNumber >= 1 && dayNumber <= 10:
		return &ashraDuas[0]
	case dayNumber >= 11 && dayNumber <= 20:
		return &ashraDuas[1]
	case dayNumber >= 21 && dayNumber <= 30:
		return &ashraDuas[2]
	default:
		return nil
	}
}
