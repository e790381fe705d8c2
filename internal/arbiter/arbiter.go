// Package arbiter resolves the independently-configured special display
// channels into the single fullscreen overlay a board may show. Channels
// are evaluated as pure functions of (config, now); Decide imposes a fixed
// precedence when their windows overlap.
package arbiter

import "github.com/Noor-Digital-LLC/minaret/internal/model"

// Inputs are the channel states for one instant.
type Inputs struct {
	Eid      EidState
	Taraweeh TaraweehState
	Dua      bool
}

// Decide picks the winning overlay, highest precedence first:
// Eid celebration, Eid announcement, Taraweeh, post-Jamat dua, normal.
// Lower-priority channels keep evaluating; they just are not rendered.
func Decide(in Inputs) model.OverlayTag {
	switch {
	case in.Eid == EidCelebrating:
		return model.OverlayEidCelebrate
	case in.Eid == EidAnnouncing:
		return model.OverlayEidAnnounce
	case in.Taraweeh.Showing:
		return model.OverlayTaraweeh
	case in.Dua:
		return model.OverlayDua
	default:
		return model.OverlayNormal
	}
}
