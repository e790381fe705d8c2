package model

// EidTiming is the eid-timing document: a single dated congregation.
// Datetime is ISO 8601 local time ("2006-01-02T15:04"). An empty document
// means no Eid is configured.
type EidTiming struct {
	Namaz    string `json:"namaz"`
	Datetime string `json:"datetime"`
}

// TaraweehTiming is the taraweeh-timing document covering the Ramadan
// date range, dates as "YYYY-MM-DD" and time as "HH:MM".
type TaraweehTiming struct {
	StartDate string `json:"taraweeh_start_date"`
	EndDate   string `json:"taraweeh_end_date"`
	Time      string `json:"taraweeh_time"`
}

// AshraDua is the devotional text for one ten-day segment of Ramadan.
type AshraDua struct {
	Title   string `json:"title"`
	Arabic  string `json:"dua"`
	English string `json:"dua_english"`
}
