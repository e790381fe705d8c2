package astro

import (
	"time"

	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/timeutil"
)

// Overrides are actual configured times, preferred over raw solar events
// when present and well-formed. "HH:MM" strings straight from the timings
// document; empty means unavailable.
type Overrides struct {
	MaghribJamat string
	IshaAzaan    string
	FajrAzaan    string
}

// Windows are the derived devotional spans, minute-of-day. Awwabin is
// only defined when both of its overrides are well-formed.
type Windows struct {
	Sunrise   int
	Sunset    int
	SolarNoon int

	ZawaalStart, ZawaalEnd     int
	GhuroobStart, GhuroobEnd   int
	ChashtStart, ChashtEnd     int
	SehriEnd                   int
	IftarStart                 int
	TahajjudStart, TahajjudEnd int

	HasAwwabin               bool
	AwwabinStart, AwwabinEnd int
}

// Derive applies the fixed offsets to the solar events. Recomputed once
// per calendar day, or whenever the timings document changes, since the
// overrides come from it.
func Derive(sol SolarDay, ov Overrides) Windows {
	w := Windows{
		Sunrise:   sol.Sunrise,
		Sunset:    sol.Sunset,
		SolarNoon: sol.SolarNoon,
	}

	w.ZawaalStart = sol.SolarNoon - 15
	w.ZawaalEnd = sol.SolarNoon + 5
	w.GhuroobStart = sol.Sunset
	w.GhuroobEnd = sol.Sunset + 15
	w.ChashtStart = sol.Sunrise + 20
	w.ChashtEnd = w.ZawaalStart - 10

	// Tahajjud spans the last third of the night, Maghrib to next Fajr.
	// Configured times beat the raw solar estimate when available.
	maghrib := sol.Sunset
	if timeutil.WellFormed(ov.MaghribJamat) {
		maghrib, _ = timeutil.ToMinutes(ov.MaghribJamat)
	}
	fajr := sol.Dawn
	if timeutil.WellFormed(ov.FajrAzaan) {
		fajr, _ = timeutil.ToMinutes(ov.FajrAzaan)
	}
	if fajr < maghrib {
		// Fajr is past midnight relative to this Maghrib.
		fajr += timeutil.MinutesPerDay
	}
	night := fajr - maghrib
	w.TahajjudStart = fajr - night/3
	w.TahajjudEnd = fajr

	w.SehriEnd = fajr - 3
	w.IftarStart = maghrib

	if timeutil.WellFormed(ov.MaghribJamat) && timeutil.WellFormed(ov.IshaAzaan) {
		w.HasAwwabin = true
		w.AwwabinStart, _ = timeutil.ToMinutes(ov.MaghribJamat)
		w.AwwabinEnd, _ = timeutil.ToMinutes(ov.IshaAzaan)
	}
	return w
}

// ForDate computes and derives in one step.
func ForDate(date time.Time, lat, lon float64, ov Overrides) (Windows, error) {
	sol, err := Compute(date, lat, lon)
	if err != nil {
		return Windows{}, err
	}
	return Derive(sol, ov), nil
}

// SunTimes renders the windows for the board feed.
func (w Windows) SunTimes() *model.SunTimes {
	st := &model.SunTimes{
		Sunrise:       timeutil.FormatMinutes(w.Sunrise),
		Sunset:        timeutil.FormatMinutes(w.Sunset),
		SolarNoon:     timeutil.FormatMinutes(w.SolarNoon),
		ZawaalStart:   timeutil.FormatMinutes(w.ZawaalStart),
		ZawaalEnd:     timeutil.FormatMinutes(w.ZawaalEnd),
		GhuroobStart:  timeutil.FormatMinutes(w.GhuroobStart),
		GhuroobEnd:    timeutil.FormatMinutes(w.GhuroobEnd),
		ChashtStart:   timeutil.FormatMinutes(w.ChashtStart),
		ChashtEnd:     timeutil.FormatMinutes(w.ChashtEnd),
		SehriEnd:      timeutil.FormatMinutes(w.SehriEnd),
		IftarStart:    timeutil.FormatMinutes(w.IftarStart),
		TahajjudStart: timeutil.FormatMinutes(w.TahajjudStart),
		TahajjudEnd:   timeutil.FormatMinutes(w.TahajjudEnd),
	}
	if w.HasAwwabin {
		st.AwwabinStart = timeutil.FormatMinutes(w.AwwabinStart)
		st.AwwabinEnd = timeutil.FormatMinutes(w.AwwabinEnd)
	}
	return st
}
