package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api/admin/auth/packets"
	"github.com/Noor-Digital-LLC/minaret/internal/http/middleware"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// AuthPublicModule mounts public auth endpoints (/auth/login)
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
	})
}

// AuthSessionModule mounts private session endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.POST("/auth/change_password", ctl.changePassword)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

// POST /api/admin/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	foundUser, err := a.store.GetUserByEmail(request.Email)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"token": token}, nil
}

// POST /api/admin/auth/change_password
func (a *AccountManager) changePassword(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !middleware.CheckPassword(user.HashedPassword, request.OldPassword) {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "old password is incorrect"}
	}

	hashed, err := middleware.HashPassword(request.NewPassword)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	if err := a.store.UpdateUserPassword(user.ID, hashed); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not change password"}
	}

	log.Info().Int("user_id", user.ID).Msg("admin password changed")
	return gin.H{"message": "password changed successfully"}, nil
}

// GET /api/admin/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}
