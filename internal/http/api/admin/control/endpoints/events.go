package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/timeutil"
)

// EventsModule mounts the Eid and Taraweeh scheduling endpoints.
func EventsModule(store db.Store) api.Module {
	ctl := &EventsManager{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/eid", ctl.getEid)
		c.PUT("/eid", ctl.updateEid)
		c.DELETE("/eid", ctl.clearEid)
		c.GET("/taraweeh", ctl.getTaraweeh)
		c.PUT("/taraweeh", ctl.updateTaraweeh)
		c.DELETE("/taraweeh", ctl.clearTaraweeh)
	})
}

type EventsManager struct {
	store db.Store
}

// GET /api/admin/control/eid
func (e *EventsManager) getEid(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	return e.getDocument(board.DocEidTiming)
}

// PUT /api/admin/control/eid
func (e *EventsManager) updateEid(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateEidRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := time.Parse("2006-01-02T15:04", request.Datetime); err != nil {
		if _, err := time.Parse("2006-01-02T15:04:05", request.Datetime); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "datetime must be YYYY-MM-DDTHH:MM[:SS]"}
		}
	}

	timing := model.EidTiming{Namaz: request.Namaz, Datetime: request.Datetime}
	if apiErr := e.putDocument(board.DocEidTiming, timing); apiErr != nil {
		return nil, apiErr
	}

	log.Info().Int("user_id", user.ID).Str("datetime", request.Datetime).Msg("eid timing scheduled")
	return timing, nil
}

// DELETE /api/admin/control/eid
func (e *EventsManager) clearEid(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := e.store.ClearDocument(board.DocEidTiming); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not clear eid timing"}
	}
	log.Info().Int("user_id", user.ID).Msg("eid timing cleared")
	return gin.H{"message": "eid timing cleared"}, nil
}

// GET /api/admin/control/taraweeh
func (e *EventsManager) getTaraweeh(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	return e.getDocument(board.DocTaraweehTiming)
}

// PUT /api/admin/control/taraweeh
func (e *EventsManager) updateTaraweeh(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateTaraweehRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	start, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "taraweeh_start_date must be YYYY-MM-DD"}
	}
	end, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "taraweeh_end_date must be YYYY-MM-DD"}
	}
	if end.Before(start) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "taraweeh_end_date is before taraweeh_start_date"}
	}
	if !timeutil.WellFormed(request.Time) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "taraweeh_time must be HH:MM"}
	}

	timing := model.TaraweehTiming{
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
		Time:      request.Time,
	}
	if apiErr := e.putDocument(board.DocTaraweehTiming, timing); apiErr != nil {
		return nil, apiErr
	}

	log.Info().
		Int("user_id", user.ID).
		Str("start", request.StartDate).
		Str("end", request.EndDate).
		Msg("taraweeh timing scheduled")
	return timing, nil
}

// DELETE /api/admin/control/taraweeh
func (e *EventsManager) clearTaraweeh(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := e.store.ClearDocument(board.DocTaraweehTiming); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not clear taraweeh timing"}
	}
	log.Info().Int("user_id", user.ID).Msg("taraweeh timing cleared")
	return gin.H{"message": "taraweeh timing cleared"}, nil
}

func (e *EventsManager) getDocument(name string) (any, *api.APIError) {
	body, err := e.store.GetDocument(name)
	if err != nil {
		if err == db.ErrDocumentNotFound {
			return json.RawMessage(`{}`), nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load " + name}
	}
	return json.RawMessage(body), nil
}

func (e *EventsManager) putDocument(name string, doc any) *api.APIError {
	body, err := json.Marshal(doc)
	if err != nil {
		return &api.APIError{Code: http.StatusInternalServerError, Message: "could not encode " + name}
	}
	if err := e.store.UpsertDocument(name, body); err != nil {
		return &api.APIError{Code: http.StatusInternalServerError, Message: "could not save " + name}
	}
	return nil
}
