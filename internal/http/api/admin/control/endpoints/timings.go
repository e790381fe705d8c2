package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/timeutil"
)

// TimingsModule mounts the prayer timetable endpoints.
func TimingsModule(store db.Store) api.Module {
	ctl := &TimingsManager{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/timings", ctl.getTimings)
		c.PUT("/timings", ctl.updateTimings)
	})
}

type TimingsManager struct {
	store db.Store
}

// GET /api/admin/control/timings
func (t *TimingsManager) getTimings(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	body, err := t.store.GetDocument(board.DocPrayerTimes)
	if err != nil {
		if err == db.ErrDocumentNotFound {
			return json.RawMessage(`{}`), nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load timings"}
	}
	return json.RawMessage(body), nil
}

// PUT /api/admin/control/timings
//
// Accepts a partial update: only the keys present in the request body are
// merged into the stored timetable. Every value must be an HH:MM string.
func (t *TimingsManager) updateTimings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var updates map[string]string
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if len(updates) == 0 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "no timing fields provided"}
	}

	for key, value := range updates {
		if !timingKeys[key] {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown timing field %q", key)}
		}
		if !timeutil.WellFormed(value) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("%s must be HH:MM, got %q", key, value)}
		}
	}

	current := map[string]string{}
	if body, err := t.store.GetDocument(board.DocPrayerTimes); err == nil {
		if err := json.Unmarshal(body, &current); err != nil {
			log.Warn().Err(err).Msg("stored timings are not an object, replacing")
			current = map[string]string{}
		}
	}
	for key, value := range updates {
		current[key] = value
	}

	body, err := json.Marshal(current)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not encode timings"}
	}
	if err := t.store.UpsertDocument(board.DocPrayerTimes, body); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save timings"}
	}

	log.Info().Int("user_id", user.ID).Int("fields", len(updates)).Msg("prayer timings updated")
	return json.RawMessage(body), nil
}

// timingKeys is the set of fields the timetable document may carry.
var timingKeys = map[string]bool{
	"FAJR_AZAAN":    true,
	"FAJR_JAMAT":    true,
	"ZUHAR_AZAAN":   true,
	"ZUHAR_JAMAT":   true,
	"JUMAH_AZAAN":   true,
	"JUMAH_JAMAT":   true,
	"ASR_AZAAN":     true,
	"ASR_JAMAT":     true,
	"MAGHRIB_AZAAN": true,
	"MAGHRIB_JAMAT": true,
	"ISHA_AZAAN":    true,
	"ISHA_JAMAT":    true,
	"SUNRISE":       true,
}
