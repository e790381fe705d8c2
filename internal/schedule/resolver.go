// Resolves the day's five prayer slots against a wall-clock instant:
// which slot is currently highlighted and which Azaan comes next.
package schedule

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/timeutil"
)

// absent marks a slot whose time string was empty or malformed. Such a
// slot never becomes active and never counts as "next": windows built
// from missing data fail closed.
const absent = -1

// Day is a prayer-times document resolved to minute-of-day slots for a
// specific weekday, with JUMAH substituted for ZUHAR on Fridays.
type Day struct {
	Slots   [5]model.PrayerSlot
	Sunrise int
}

func parseOrAbsent(hhmm string) int {
	if hhmm == "" {
		return absent
	}
	m, err := timeutil.ToMinutes(hhmm)
	if err != nil {
		log.Warn().Str("time", hhmm).Msg("ignoring malformed prayer time")
		return absent
	}
	return m
}

// Resolve builds the day's schedule from the raw timings document.
// Malformed or empty entries become inert slots rather than errors.
func Resolve(doc model.PrayerTimes, weekday time.Weekday) Day {
	second := model.PrayerSlot{Name: model.Zuhar, Azaan: parseOrAbsent(doc.ZuharAzaan), Jamat: parseOrAbsent(doc.ZuharJamat)}
	if weekday == time.Friday {
		second = model.PrayerSlot{Name: model.Jumah, Azaan: parseOrAbsent(doc.JumahAzaan), Jamat: parseOrAbsent(doc.JumahJamat)}
	}

	d := Day{
		Slots: [5]model.PrayerSlot{
			{Name: model.Fajr, Azaan: parseOrAbsent(doc.FajrAzaan), Jamat: parseOrAbsent(doc.FajrJamat)},
			second,
			{Name: model.Asr, Azaan: parseOrAbsent(doc.AsrAzaan), Jamat: parseOrAbsent(doc.AsrJamat)},
			{Name: model.Maghrib, Azaan: parseOrAbsent(doc.MaghribAzaan), Jamat: parseOrAbsent(doc.MaghribJamat)},
			{Name: model.Isha, Azaan: parseOrAbsent(doc.IshaAzaan), Jamat: parseOrAbsent(doc.IshaJamat)},
		},
	}

	// FAJR's active window ends at sunrise, not a fixed offset. Without a
	// SUNRISE entry the document falls back to ten minutes before the
	// midday Azaan, matching the board's historical behaviour.
	d.Sunrise = parseOrAbsent(doc.Sunrise)
	if d.Sunrise == absent && d.Slots[1].Azaan != absent {
		d.Sunrise = d.Slots[1].Azaan - 10
	}
	return d
}

// windowEnd returns the exclusive end of slot i's active window, or absent
// when the boundary cannot be constructed from the available data.
func (d Day) windowEnd(i int) int {
	switch i {
	case 0:
		return d.Sunrise
	case 4:
		if d.Slots[0].Azaan == absent {
			return absent
		}
		// wraps past midnight; InWindow handles the shift
		return d.Slots[0].Azaan - 10
	default:
		if d.Slots[i+1].Azaan == absent {
			return absent
		}
		return d.Slots[i+1].Azaan - 10
	}
}

// ActivePrayer returns the slot whose window contains now, iterating the
// canonical order. Windows are disjoint by construction; should bad data
// make them overlap, the first match in iteration order wins.
func ActivePrayer(d Day, now int) (model.PrayerName, bool) {
	for i, s := range d.Slots {
		if s.Azaan == absent {
			continue
		}
		end := d.windowEnd(i)
		if end == absent {
			continue
		}
		if i == 4 {
			if timeutil.InWindow(now, s.Azaan, end) {
				return s.Name, true
			}
			continue
		}
		if now >= s.Azaan && now < end {
			return s.Name, true
		}
	}
	return "", false
}

// NextPrayer returns the first slot whose Azaan is strictly after now;
// past the last Azaan it wraps to FAJR of the following day. The second
// return reports that wrap. A currently active slot is never "next".
func NextPrayer(d Day, now int) (model.PrayerSlot, bool) {
	for _, s := range d.Slots {
		if s.Azaan == absent {
			continue
		}
		if s.Azaan > now {
			return s, false
		}
	}
	return d.Slots[0], true
}

// JamatTimes lists the day's configured Jamat minutes, skipping absent
// entries. Feeds the post-Jamat dua channel.
func (d Day) JamatTimes() []int {
	out := make([]int, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.Jamat != absent {
			out = append(out, s.Jamat)
		}
	}
	return out
}
