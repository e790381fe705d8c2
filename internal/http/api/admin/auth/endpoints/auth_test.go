package endpoints

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/http/middleware"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

const testSecret = "test-secret"

// userStore is an in-memory db.Store holding a single admin.
type userStore struct {
	user model.User
}

func newUserStore(t *testing.T, email, password string) *userStore {
	t.Helper()
	hash, err := middleware.HashPassword(password)
	require.NoError(t, err)
	return &userStore{user: model.User{ID: 1, Email: email, HashedPassword: hash}}
}

func (s *userStore) CreateUser(string, string, *string) (int, error) { return 1, nil }

func (s *userStore) GetUserByEmail(email string) (*model.User, error) {
	if email != s.user.Email {
		return nil, sql.ErrNoRows
	}
	u := s.user
	return &u, nil
}

func (s *userStore) GetUserByID(id int) (*model.User, error) {
	u := s.user
	return &u, nil
}

func (s *userStore) UpdateUserPassword(id int, hashed string) error {
	s.user.HashedPassword = hashed
	return nil
}

func (s *userStore) GetDocument(string) ([]byte, error)      { return nil, db.ErrDocumentNotFound }
func (s *userStore) UpsertDocument(string, []byte) error     { return nil }
func (s *userStore) ClearDocument(string) error              { return nil }
func (s *userStore) ListDocuments() ([]db.DocumentMeta, error) { return nil, nil }

var _ db.Store = (*userStore)(nil)

func newAuthRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"},
		AuthPublicModule(testSecret, store),
	)
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	},
		AuthSessionModule(testSecret, store),
	)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	store := newUserStore(t, "admin@example.com", "correct horse")
	r := newAuthRouter(store)

	w := postJSON(t, r, "/api/admin/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	store := newUserStore(t, "admin@example.com", "correct horse")
	r := newAuthRouter(store)

	w := postJSON(t, r, "/api/admin/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "battery staple",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := newUserStore(t, "admin@example.com", "correct horse")
	r := newAuthRouter(store)

	w := postJSON(t, r, "/api/admin/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "correct horse",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionEndpointsRequireToken(t *testing.T) {
	store := newUserStore(t, "admin@example.com", "correct horse")
	r := newAuthRouter(store)

	w := postJSON(t, r, "/api/admin/auth/change_password", "", map[string]string{
		"old_password": "correct horse",
		"new_password": "battery staple",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordFlow(t *testing.T) {
	store := newUserStore(t, "admin@example.com", "correct horse")
	r := newAuthRouter(store)

	token, err := middleware.GenerateJWT(1, testSecret)
	require.NoError(t, err)

	// wrong current password is refused
	w := postJSON(t, r, "/api/admin/auth/change_password", token, map[string]string{
		"old_password": "wrong",
		"new_password": "battery staple",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSON(t, r, "/api/admin/auth/change_password", token, map[string]string{
		"old_password": "correct horse",
		"new_password": "battery staple",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the new password must now authenticate
	w = postJSON(t, r, "/api/admin/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "battery staple",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentProfile(t *testing.T) {
	store := newUserStore(t, "admin@example.com", "correct horse")
	r := newAuthRouter(store)

	token, err := middleware.GenerateJWT(1, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/current_profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "admin@example.com", profile["email"])
}
