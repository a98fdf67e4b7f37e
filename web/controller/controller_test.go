package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"nouasseur-portal/database"
	"nouasseur-portal/web/entity"
	"nouasseur-portal/web/middleware"
	"nouasseur-portal/web/service"
	"nouasseur-portal/web/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testApp struct {
	engine   *gin.Engine
	db       *gorm.DB
	sessions *session.Manager
	users    *service.UserService
}

// newTestApp wires the API routes the way the server does, minus the HTML
// pages, against a throwaway database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	sessions := session.NewManager("test-secret")
	engine := gin.New()
	engine.Use(middleware.Identify(sessions))

	api := engine.Group("/api")
	NewHealthController(api, db)

	users := service.NewUserService(db)
	NewUserController(api.Group("/users"), users, sessions)

	protected := api.Group("", middleware.RequireAuth())
	NewMemberController(protected.Group("/members"), service.NewMemberService(db))
	NewEventController(protected.Group("/events"), service.NewEventService(db))
	NewDirectoryController(protected.Group("/directories"), service.NewDirectoryService(db))

	// Stand-in for a protected HTML page.
	engine.GET("/members", middleware.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "members page")
	})

	return &testApp{engine: engine, db: db, sessions: sessions, users: users}
}

func (app *testApp) request(t *testing.T, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

// login registers a user and returns its session cookie.
func (app *testApp) login(t *testing.T) *http.Cookie {
	t.Helper()
	_, err := app.users.Register("jdoe", "jdoe@example.org", "s3cret")
	require.NoError(t, err)

	w := app.request(t, http.MethodPost, "/api/users/login",
		`{"username":"jdoe","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func decodeMsg(t *testing.T, w *httptest.ResponseRecorder) entity.Msg {
	t.Helper()
	var msg entity.Msg
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	return msg
}
