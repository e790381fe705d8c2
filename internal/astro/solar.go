// NOAA-style solar position approximation. Produces sunrise, sunset,
// solar noon and a dawn estimate for one date and coordinate; accuracy is
// within a couple of minutes, which the board rounds away anyway.
package astro

import (
	"errors"
	"math"
	"time"
)

// Zenith angles in degrees. Official is the standard sunrise/sunset
// horizon; dawn uses a 15 degree depression for the Fajr estimate.
const (
	zenithOfficial = 90.833
	zenithDawn     = 105.0
)

// ErrPolar is returned when the sun never crosses the requested zenith on
// that date at that latitude.
var ErrPolar = errors.New("sun does not reach zenith at this latitude/date")

// SolarDay holds the computed events as minute-of-day values local to the
// date's location.
type SolarDay struct {
	Sunrise   int
	Sunset    int
	SolarNoon int
	Dawn      int
}

func deg2rad(v float64) float64 { return v * math.Pi / 180.0 }
func rad2deg(v float64) float64 { return v * 180.0 / math.Pi }

func normalizeDeg(v float64) float64 {
	for v < 0 {
		v += 360
	}
	for v >= 360 {
		v -= 360
	}
	return v
}

func normalizeHour(v float64) float64 {
	for v < 0 {
		v += 24
	}
	for v >= 24 {
		v -= 24
	}
	return v
}

// eventUT computes the UT hour of the sun crossing zenith on the given
// day of year, rising or setting.
func eventUT(dayOfYear int, lat, lon, zenith float64, rising bool) (float64, error) {
	lngHour := lon / 15.0

	var t float64
	if rising {
		t = float64(dayOfYear) + (6.0-lngHour)/24.0
	} else {
		t = float64(dayOfYear) + (18.0-lngHour)/24.0
	}

	m := 0.9856*t - 3.289
	l := normalizeDeg(m + 1.916*math.Sin(deg2rad(m)) + 0.020*math.Sin(2*deg2rad(m)) + 282.634)

	ra := normalizeDeg(rad2deg(math.Atan(0.91764 * math.Tan(deg2rad(l)))))
	lQuadrant := math.Floor(l/90.0) * 90.0
	raQuadrant := math.Floor(ra/90.0) * 90.0
	ra = (ra + (lQuadrant - raQuadrant)) / 15.0

	sinDec := 0.39782 * math.Sin(deg2rad(l))
	cosDec := math.Cos(math.Asin(sinDec))

	cosH := (math.Cos(deg2rad(zenith)) - sinDec*math.Sin(deg2rad(lat))) / (cosDec * math.Cos(deg2rad(lat)))
	if cosH > 1 || cosH < -1 {
		return 0, ErrPolar
	}

	var h float64
	if rising {
		h = (360.0 - rad2deg(math.Acos(cosH))) / 15.0
	} else {
		h = rad2deg(math.Acos(cosH)) / 15.0
	}

	localT := h + ra - 0.06571*t - 6.622
	return normalizeHour(localT - lngHour), nil
}

func localMinute(day time.Time, ut float64) int {
	utc := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(ut * float64(time.Hour)))
	local := utc.In(day.Location())
	return local.Hour()*60 + local.Minute()
}

// Compute derives the solar events for date at the given coordinate.
// Idempotent for a fixed (date, coordinate) pair.
func Compute(date time.Time, lat, lon float64) (SolarDay, error) {
	n := date.YearDay()

	riseUT, err := eventUT(n, lat, lon, zenithOfficial, true)
	if err != nil {
		return SolarDay{}, err
	}
	setUT, err := eventUT(n, lat, lon, zenithOfficial, false)
	if err != nil {
		return SolarDay{}, err
	}
	dawnUT, err := eventUT(n, lat, lon, zenithDawn, true)
	if err != nil {
		// Dawn can be unreachable at high latitudes in summer while the
		// sun still rises; fall back to the official sunrise.
		dawnUT = riseUT
	}

	d := SolarDay{
		Sunrise: localMinute(date, riseUT),
		Sunset:  localMinute(date, setUT),
		Dawn:    localMinute(date, dawnUT),
	}

	// Solar noon sits midway through the daylight span; the span wraps
	// when UT conversion lands sunset before sunrise numerically.
	rise, set := d.Sunrise, d.Sunset
	if set < rise {
		set += 24 * 60
	}
	d.SolarNoon = ((rise + set) / 2) % (24 * 60)
	return d, nil
}
