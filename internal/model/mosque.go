package model

// MosqueDetail is the mosque-detail document: identity plus the coordinate
// used for solar-event derivation. Loaded once per poll, coordinate is
// treated as immutable for a given calendar day.
type MosqueDetail struct {
	Name      string  `json:"mosque_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
