package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/control/packets"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// StatusModule mounts the document inventory endpoint, used by the admin
// UI to show when each piece of configuration last changed.
func StatusModule(store db.Store) api.Module {
	ctl := &StatusManager{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/documents", ctl.listDocuments)
	})
}

type StatusManager struct {
	store db.Store
}

// GET /api/admin/control/documents
func (s *StatusManager) listDocuments(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	docs, err := s.store.ListDocuments()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list documents"}
	}

	out := make([]packets.DocumentStatusResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, packets.DocumentStatusResponse{
			Name:      doc.Name,
			UpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
