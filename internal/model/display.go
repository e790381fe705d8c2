package model

import "time"

// OverlayTag names the single fullscreen overlay a board may show.
// Exactly one tag is active at any instant.
type OverlayTag string

const (
	OverlayNormal       OverlayTag = "NORMAL"
	OverlayDua          OverlayTag = "DUA_OVERLAY"
	OverlayTaraweeh     OverlayTag = "TARAWEEH_OVERLAY"
	OverlayEidAnnounce  OverlayTag = "EID_ANNOUNCE"
	OverlayEidCelebrate OverlayTag = "EID_CELEBRATE"
)

// NextPrayer summarises the first strictly-future Azaan.
type NextPrayer struct {
	Name  PrayerName `json:"name"`
	Azaan string     `json:"azaan_time"`
	Jamat string     `json:"jamat_time"`
}

// SunTimes carries the derived devotional windows, all "HH:MM" local.
// Awwabin fields are empty when the Maghrib-Jamat / Isha-Azaan overrides
// are missing or malformed.
type SunTimes struct {
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	SolarNoon     string `json:"solar_noon"`
	ZawaalStart   string `json:"zawaal_start"`
	ZawaalEnd     string `json:"zawaal_end"`
	GhuroobStart  string `json:"ghuroob_start"`
	GhuroobEnd    string `json:"ghuroob_end"`
	ChashtStart   string `json:"chasht_start"`
	ChashtEnd     string `json:"chasht_end"`
	SehriEnd      string `json:"sehri_end"`
	IftarStart    string `json:"iftar_start"`
	TahajjudStart string `json:"tahajjud_start"`
	TahajjudEnd   string `json:"tahajjud_end"`
	AwwabinStart  string `json:"awwabin_start,omitempty"`
	AwwabinEnd    string `json:"awwabin_end,omitempty"`
}

// TaraweehInfo feeds the always-visible info widget during Ramadan.
type TaraweehInfo struct {
	Upcoming bool   `json:"upcoming"`
	Time     string `json:"time"`
}

// BeepCue is one audible-cue instant a board should schedule locally.
type BeepCue struct {
	Label string `json:"label"`
	At    string `json:"at"`
}

// DisplayState is the arbitrated output consumed by the rendering boards.
type DisplayState struct {
	Overlay      OverlayTag    `json:"overlay"`
	FadeOutUntil *time.Time    `json:"fade_out_until,omitempty"`
	ActivePrayer PrayerName    `json:"active_prayer,omitempty"`
	Next         NextPrayer    `json:"next_prayer"`
	Sun          *SunTimes     `json:"sun,omitempty"`
	Taraweeh     *TaraweehInfo `json:"taraweeh,omitempty"`
	Ashra        *AshraDua     `json:"ashra,omitempty"`
	Eid          *EidTiming    `json:"eid,omitempty"`
	PanelIndex   int           `json:"panel_index"`
	Beeps        []BeepCue     `json:"beeps,omitempty"`
	Mosque       string        `json:"mosque_name,omitempty"`
}
