package web

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"nouasseur-portal/database"
	"nouasseur-portal/database/model"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer builds the full router, embedded templates included,
// against a throwaway database.
func newTestServer(t *testing.T) (*gin.Engine, *Server) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	server := NewServer(db, session.NewManager("test-secret"))
	engine, err := server.initRouter()
	require.NoError(t, err)
	return engine, server
}

func get(engine *gin.Engine, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, server *Server) *http.Cookie {
	t.Helper()
	token, err := server.sessions.Issue(&model.User{Id: 1, Username: "jdoe", Email: "jdoe@example.org"})
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func TestHomePageRendersUpcomingEvents(t *testing.T) {
	engine, server := newTestServer(t)
	require.NoError(t, server.db.Create(&model.Event{EventName: "Grand Reunion"}).Error)

	w := get(engine, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Grand Reunion")
	assert.Contains(t, body, "Nouasseur")
}

func TestLoginPageAndRedirects(t *testing.T) {
	engine, server := newTestServer(t)

	w := get(engine, "/login?redirectTo=%2Fevents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/events")

	// An authenticated visitor has no business on the login page.
	w = get(engine, "/login", sessionCookie(t, server))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestProtectedPagesNeedSession(t *testing.T) {
	engine, server := newTestServer(t)

	for _, path := range []string{"/members", "/events", "/directory"} {
		w := get(engine, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login?redirectTo="), path)
	}

	cookie := sessionCookie(t, server)
	for _, path := range []string{"/members", "/events", "/directory"} {
		w := get(engine, path, cookie)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestStaticAssetsAndNoRoute(t *testing.T) {
	engine, _ := newTestServer(t)

	w := get(engine, "/assets/css/styles.css", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(engine, "/no/such/page", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
