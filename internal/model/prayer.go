package model

// PrayerName identifies one of the five daily slots. JUMAH replaces ZUHAR
// on Fridays only.
type PrayerName string

const (
	Fajr    PrayerName = "FAJR"
	Zuhar   PrayerName = "ZUHAR"
	Jumah   PrayerName = "JUMAH"
	Asr     PrayerName = "ASR"
	Maghrib PrayerName = "MAGHRIB"
	Isha    PrayerName = "ISHA"
)

// PrayerTimes is the raw timings document edited by the admin panel and
// polled by the boards. All values are local wall-clock "HH:MM" strings;
// SUNRISE is optional.
type PrayerTimes struct {
	FajrAzaan    string `json:"FAJR_AZAAN"`
	FajrJamat    string `json:"FAJR_JAMAT"`
	ZuharAzaan   string `json:"ZUHAR_AZAAN"`
	ZuharJamat   string `json:"ZUHAR_JAMAT"`
	AsrAzaan     string `json:"ASR_AZAAN"`
	AsrJamat     string `json:"ASR_JAMAT"`
	MaghribAzaan string `json:"MAGHRIB_AZAAN"`
	MaghribJamat string `json:"MAGHRIB_JAMAT"`
	IshaAzaan    string `json:"ISHA_AZAAN"`
	IshaJamat    string `json:"ISHA_JAMAT"`
	JumahAzaan   string `json:"JUMAH_AZAAN"`
	JumahJamat   string `json:"JUMAH_JAMAT"`
	Sunrise      string `json:"SUNRISE,omitempty"`
}

// PrayerSlot is one resolved entry of the day's schedule, minute-of-day.
type PrayerSlot struct {
	Name  PrayerName
	Azaan int
	Jamat int
}
