package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
)

// BoardModule mounts the endpoints the display boards poll. Boards carry
// no credentials, so everything here is public.
func BoardModule(src board.ConfigSource, sched *board.Scheduler) api.Module {
	ctl := &BoardManager{src: src, sched: sched}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/config/:name", ctl.getConfig)
		c.PUBLIC_GET("/state", ctl.getState)
	})
}

type BoardManager struct {
	src   board.ConfigSource
	sched *board.Scheduler
}

// servable is the set of documents a board may fetch by name.
var servable = map[string]bool{
	board.DocPrayerTimes:    true,
	board.DocMosqueDetail:   true,
	board.DocEidTiming:      true,
	board.DocTaraweehTiming: true,
	board.DocThemes:         true,
	board.DocActiveTheme:    true,
}

// GET /api/board/config/:name
func (b *BoardManager) getConfig(ctx *gin.Context) (any, *api.APIError) {
	name := ctx.Param("name")
	if !servable[name] {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no such document"}
	}

	body, err := b.src.Fetch(ctx.Request.Context(), name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "document temporarily unavailable"}
	}
	return json.RawMessage(body), nil
}

// GET /api/board/state
//
// Returns the scheduler's current resolved display state. Boards that
// cannot subscribe over MQTT fall back to polling this.
func (b *BoardManager) getState(ctx *gin.Context) (any, *api.APIError) {
	return b.sched.State(), nil
}
