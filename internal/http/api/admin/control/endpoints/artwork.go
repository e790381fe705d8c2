package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/storage"
)

// ArtworkModule mounts the overlay artwork upload endpoint.
func ArtworkModule(store storage.Storage) api.Module {
	ctl := &ArtworkManager{storage: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/artwork", ctl.uploadArtwork)
	})
}

type ArtworkManager struct {
	storage storage.Storage
}

// POST /api/admin/control/artwork
//
// Multipart upload of a single "file" field. Returns the URL a theme can
// reference for its overlay image.
func (a *ArtworkManager) uploadArtwork(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file field"}
	}

	url, err := a.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("artwork upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save artwork"}
	}

	log.Info().Int("user_id", user.ID).Str("url", url).Msg("artwork uploaded")
	return packets.ArtworkResponse{URL: url}, nil
}
