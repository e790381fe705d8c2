package endpoints

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// ThemesModule mounts the board theme endpoints. Themes are opaque JSON
// objects keyed by name; boards pull them alongside the timetable and
// render with whichever one is active.
func ThemesModule(store db.Store) api.Module {
	ctl := &ThemesManager{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/themes", ctl.listThemes)
		c.PUT("/themes", ctl.updateThemes)
		c.POST("/themes/active", ctl.setActiveTheme)
	})
}

type ThemesManager struct {
	store db.Store
}

// GET /api/admin/control/themes
func (t *ThemesManager) listThemes(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	themes, apiErr := t.loadThemes()
	if apiErr != nil {
		return nil, apiErr
	}

	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	active := ""
	if body, err := t.store.GetDocument(board.DocActiveTheme); err == nil {
		var doc packets.SetActiveThemeRequest
		if json.Unmarshal(body, &doc) == nil {
			active = doc.Active
		}
	}

	return packets.ThemeListResponse{Active: active, Available: names}, nil
}

// PUT /api/admin/control/themes
//
// Replaces the whole theme collection. The body must be a JSON object
// mapping theme names to their settings.
func (t *ThemesManager) updateThemes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var themes map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&themes); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	body, err := json.Marshal(themes)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not encode themes"}
	}
	if err := t.store.UpsertDocument(board.DocThemes, body); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save themes"}
	}

	log.Info().Int("user_id", user.ID).Int("themes", len(themes)).Msg("theme collection replaced")
	return gin.H{"message": "themes saved"}, nil
}

// POST /api/admin/control/themes/active
func (t *ThemesManager) setActiveTheme(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SetActiveThemeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	themes, apiErr := t.loadThemes()
	if apiErr != nil {
		return nil, apiErr
	}
	if _, ok := themes[request.Active]; !ok {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no such theme: " + request.Active}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not encode active theme"}
	}
	if err := t.store.UpsertDocument(board.DocActiveTheme, body); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save active theme"}
	}

	log.Info().Int("user_id", user.ID).Str("theme", request.Active).Msg("active theme changed")
	return gin.H{"message": "active theme set to " + request.Active}, nil
}

func (t *ThemesManager) loadThemes() (map[string]json.RawMessage, *api.APIError) {
	themes := map[string]json.RawMessage{}
	body, err := t.store.GetDocument(board.DocThemes)
	if err != nil {
		if err == db.ErrDocumentNotFound {
			return themes, nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load themes"}
	}
	if err := json.Unmarshal(body, &themes); err != nil {
		log.Warn().Err(err).Msg("stored themes are not an object")
		return map[string]json.RawMessage{}, nil
	}
	return themes, nil
}
