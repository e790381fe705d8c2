package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/api"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

// memStore is an in-memory db.Store for handler tests.
type memStore struct {
	mu      sync.Mutex
	docs    map[string][]byte
	updated map[string]time.Time
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]byte{}, updated: map[string]time.Time{}}
}

func (m *memStore) CreateUser(string, string, *string) (int, error) { return 1, nil }
func (m *memStore) GetUserByEmail(string) (*model.User, error)      { return nil, nil }
func (m *memStore) GetUserByID(int) (*model.User, error)            { return nil, nil }
func (m *memStore) UpdateUserPassword(int, string) error            { return nil }

func (m *memStore) GetDocument(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.docs[name]
	if !ok {
		return nil, db.ErrDocumentNotFound
	}
	return body, nil
}

func (m *memStore) UpsertDocument(name string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = body
	m.updated[name] = time.Now()
	return nil
}

func (m *memStore) ClearDocument(name string) error {
	return m.UpsertDocument(name, []byte(`{}`))
}

func (m *memStore) ListDocuments() ([]db.DocumentMeta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.DocumentMeta, 0, len(m.docs))
	for name := range m.docs {
		out = append(out, db.DocumentMeta{Name: name, UpdatedAt: m.updated[name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ db.Store = (*memStore)(nil)

// injectUser stands in for the JWT middleware.
func injectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("currentUser", &model.User{ID: 1, Email: "admin@example.com"})
	}
}

func newTestRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api/admin",
		Middleware: []gin.HandlerFunc{injectUser()},
	},
		TimingsModule(store),
		EventsModule(store),
		MosqueModule(store),
		ThemesModule(store),
		StatusModule(store),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateTimingsMergesPartialUpdate(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPut, "/api/admin/timings", map[string]string{
		"FAJR_AZAAN": "05:30",
		"FAJR_JAMAT": "05:50",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a second partial update must not wipe the first
	w = doJSON(t, r, http.MethodPut, "/api/admin/timings", map[string]string{
		"ISHA_AZAAN": "20:15",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := store.GetDocument(board.DocPrayerTimes)
	require.NoError(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal(stored, &doc))
	assert.Equal(t, "05:30", doc["FAJR_AZAAN"])
	assert.Equal(t, "20:15", doc["ISHA_AZAAN"])
}

func TestUpdateTimingsRejectsBadInput(t *testing.T) {
	r := newTestRouter(newMemStore())

	w := doJSON(t, r, http.MethodPut, "/api/admin/timings", map[string]string{"FAJR_AZAAN": "5:3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/timings", map[string]string{"LUNCH": "12:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/timings", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTimingsEmpty(t *testing.T) {
	r := newTestRouter(newMemStore())
	w := doJSON(t, r, http.MethodGet, "/api/admin/timings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestEidRoundTrip(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPut, "/api/admin/eid", map[string]string{
		"namaz":    "Eid ul-Fitr",
		"datetime": "2025-03-31T08:30",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/admin/eid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc model.EidTiming
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Eid ul-Fitr", doc.Namaz)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/eid", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := store.GetDocument(board.DocEidTiming)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(stored))
}

func TestUpdateEidRejectsBadDatetime(t *testing.T) {
	r := newTestRouter(newMemStore())
	w := doJSON(t, r, http.MethodPut, "/api/admin/eid", map[string]string{
		"namaz":    "Eid",
		"datetime": "tomorrow morning",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaraweehValidation(t *testing.T) {
	r := newTestRouter(newMemStore())

	w := doJSON(t, r, http.MethodPut, "/api/admin/taraweeh", map[string]string{
		"taraweeh_start_date": "2025-03-30",
		"taraweeh_end_date":   "2025-03-01",
		"taraweeh_time":       "21:01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "range must not be inverted")

	w = doJSON(t, r, http.MethodPut, "/api/admin/taraweeh", map[string]string{
		"taraweeh_start_date": "2025-03-01",
		"taraweeh_end_date":   "2025-03-30",
		"taraweeh_time":       "9 pm",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/taraweeh", map[string]string{
		"taraweeh_start_date": "2025-03-01",
		"taraweeh_end_date":   "2025-03-30",
		"taraweeh_time":       "21:01",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestMosqueValidation(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store)

	lat, lon := 91.0, 73.1
	w := doJSON(t, r, http.MethodPut, "/api/admin/mosque", map[string]any{
		"mosque_name": "Test Mosque", "latitude": lat, "longitude": lon,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	lat = 33.6
	w = doJSON(t, r, http.MethodPut, "/api/admin/mosque", map[string]any{
		"mosque_name": "Test Mosque", "latitude": lat, "longitude": lon,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := store.GetDocument(board.DocMosqueDetail)
	require.NoError(t, err)
	var doc model.MosqueDetail
	require.NoError(t, json.Unmarshal(stored, &doc))
	assert.Equal(t, 33.6, doc.Latitude)
}

func TestThemes(t *testing.T) {
	r := newTestRouter(newMemStore())

	w := doJSON(t, r, http.MethodPut, "/api/admin/themes", map[string]any{
		"classic": map[string]string{"background": "#003322"},
		"ramadan": map[string]string{"background": "#220033"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/admin/themes/active", map[string]string{"active": "ramadan"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/admin/themes/active", map[string]string{"active": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/themes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Active    string   `json:"active"`
		Available []string `json:"available"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, "ramadan", list.Active)
	assert.Equal(t, []string{"classic", "ramadan"}, list.Available)
}

func TestListDocuments(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.UpsertDocument(board.DocPrayerTimes, []byte(`{}`)))
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodGet, "/api/admin/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var docs []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, board.DocPrayerTimes, docs[0]["name"])
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// no user-injecting middleware here
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"}, TimingsModule(newMemStore()))

	w := doJSON(t, r, http.MethodGet, "/api/admin/timings", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
