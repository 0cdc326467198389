// Package web provides the HTTP server of the vahanscan service: routing,
// middleware, controllers and the scheduled session sweep.
package web

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vahanscan/vahanscan/assess"
	"github.com/vahanscan/vahanscan/config"
	"github.com/vahanscan/vahanscan/database"
	"github.com/vahanscan/vahanscan/logger"
	"github.com/vahanscan/vahanscan/storage"
	"github.com/vahanscan/vahanscan/storage/memory"
	"github.com/vahanscan/vahanscan/storage/sqlite"
	"github.com/vahanscan/vahanscan/web/controller"
	"github.com/vahanscan/vahanscan/web/job"
	"github.com/vahanscan/vahanscan/web/middleware"
	"github.com/vahanscan/vahanscan/web/service"
	"github.com/vahanscan/vahanscan/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the web server with its stores, services and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	store             storage.Store
	sessions          *session.Manager
	userService       *service.UserService
	assessmentService *service.AssessmentService
	uploadService     *service.UploadService

	auth   *controller.AuthController
	assess *controller.AssessController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initServices builds the store and the services on top of it. The SQLite
// store is the default; VSCAN_STORE=memory selects the in-process one.
func (s *Server) initServices() error {
	switch config.GetStoreKind() {
	case config.StoreMemory:
		s.store = memory.NewStore()
	default:
		s.store = sqlite.NewStore(database.GetDB())
	}

	catalog, err := assess.LoadCatalog()
	if err != nil {
		return err
	}

	uploadService, err := service.NewUploadService(config.GetUploadFolder())
	if err != nil {
		return err
	}

	s.sessions = session.NewManager(s.store, config.GetSessionMaxAge())
	s.userService = service.NewUserService(s.store)
	s.assessmentService = service.NewAssessmentService(s.store, assess.NewGenerator(catalog, nil))
	s.uploadService = uploadService
	return nil
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.MaxMultipartMemory = service.MaxUploadSize
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    config.GetName(),
			"version": config.GetVersion(),
		})
	})

	api := engine.Group("/api")
	s.auth = controller.NewAuthController(api, s.userService, s.sessions, config.GetSessionMaxAge())

	protected := api.Group("", middleware.SessionAuth(s.sessions, s.userService))
	s.assess = controller.NewAssessController(protected, s.assessmentService, s.uploadService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewClearSessionsJob(s.sessions))
}

// Start initializes services, routes and jobs, then serves until Stop.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	if err = s.initServices(); err != nil {
		return err
	}

	s.cron = cron.New()
	s.cron.Start()
	s.startTask()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%v:%v", config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{Handler: engine}
	go func() {
		if serveErr := s.httpServer.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("serve:", serveErr)
		}
	}()

	logger.Infof("web server listening on %s", addr)
	return nil
}

// Stop shuts the server down and stops the scheduled jobs.
func (s *Server) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	s.cancel()
	return err
}
