package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	controlapi "github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/control/endpoints"
	authapi "github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/auth/endpoints"
	boardapi "github.com/Noor-Digital-LLC/minaret/internal/http/api/board/endpoints"
	"github.com/Noor-Digital-LLC/minaret/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	storageSystem storage.Storage,
	src board.ConfigSource,
	sched *board.Scheduler,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		// control modules
		controlapi.TimingsModule(store),
		controlapi.EventsModule(store),
		controlapi.MosqueModule(store),
		controlapi.ThemesModule(store),
		controlapi.ArtworkModule(storageSystem),
		controlapi.StatusModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/board",
	},
		boardapi.BoardModule(src, sched),
	)

	// Boards load artwork straight from disk when Spaces is off
	if !env.UseSpaces {
		r.Static("/artwork", "./artwork")
	}
}
