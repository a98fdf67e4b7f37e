// Package web provides the HTTP server of the community portal: routing,
// embedded templates and static assets, and graceful shutdown.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"time"

	"nouasseur-portal/config"
	"nouasseur-portal/logger"
	"nouasseur-portal/util/common"
	"nouasseur-portal/web/controller"
	"nouasseur-portal/web/middleware"
	"nouasseur-portal/web/service"
	"nouasseur-portal/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//go:embed html/*
var htmlFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Server is the portal web server wiring controllers to services.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db       *gorm.DB
	sessions *session.Manager

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server around an open database handle and a
// session manager.
func NewServer(db *gorm.DB, sessions *session.Manager) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{db: db, sessions: sessions, ctx: ctx, cancel: cancel}
}

func (s *Server) getHtmlTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	return template.New("").Funcs(funcMap).ParseFS(htmlFS, "html/*.html")
}

// initRouter initializes Gin, registers middleware, templates, static
// assets and controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	// gzip, excluding the API path to avoid double-compressing JSON
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/"}),
	))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, err
	}
	engine.StaticFS("/assets", http.FS(assets))

	// Establish the request identity before any routing decision.
	engine.Use(middleware.Identify(s.sessions))

	userService := service.NewUserService(s.db)
	memberService := service.NewMemberService(s.db)
	eventService := service.NewEventService(s.db)
	directoryService := service.NewDirectoryService(s.db)

	api := engine.Group("/api")
	controller.NewHealthController(api, s.db)
	controller.NewUserController(api.Group("/users"), userService, s.sessions)
	controller.NewMemberController(api.Group("/members", middleware.RequireAuth()), memberService)
	controller.NewEventController(api.Group("/events", middleware.RequireAuth()), eventService)
	controller.NewDirectoryController(api.Group("/directories", middleware.RequireAuth()), directoryService)

	pages := engine.Group("/")
	protected := engine.Group("/", middleware.RequireAuth())
	controller.NewPageController(pages, protected, eventService, memberService, directoryService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// Start initializes the router and begins serving.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := config.GetListenAddr()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: engine,
	}
	go func() {
		defer common.Recover("web server")
		if serveErr := s.httpServer.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("web server exited: ", serveErr)
		}
	}()

	logger.Infof("%s %s serving on %s", config.GetName(), config.GetVersion(), addr)
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	s.cancel()
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
