package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// MosqueModule mounts the mosque identity endpoints (name + coordinates).
func MosqueModule(store db.Store) api.Module {
	ctl := &MosqueManager{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/mosque", ctl.getMosque)
		c.PUT("/mosque", ctl.updateMosque)
	})
}

type MosqueManager struct {
	store db.Store
}

// GET /api/admin/control/mosque
func (m *MosqueManager) getMosque(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	body, err := m.store.GetDocument(board.DocMosqueDetail)
	if err != nil {
		if err == db.ErrDocumentNotFound {
			return json.RawMessage(`{}`), nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load mosque detail"}
	}
	return json.RawMessage(body), nil
}

// PUT /api/admin/control/mosque
func (m *MosqueManager) updateMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if *request.Latitude < -90 || *request.Latitude > 90 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "latitude out of range"}
	}
	if *request.Longitude < -180 || *request.Longitude > 180 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "longitude out of range"}
	}

	detail := model.MosqueDetail{
		Name:      request.Name,
		Latitude:  *request.Latitude,
		Longitude: *request.Longitude,
	}
	body, err := json.Marshal(detail)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not encode mosque detail"}
	}
	if err := m.store.UpsertDocument(board.DocMosqueDetail, body); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save mosque detail"}
	}

	log.Info().Int("user_id", user.ID).Str("mosque", request.Name).Msg("mosque detail updated")
	return detail, nil
}
