package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wahidu1/portfolio-core/internal/config"
	"github.com/wahidu1/portfolio-core/internal/database"
	"github.com/wahidu1/portfolio-core/internal/middleware"
	"github.com/wahidu1/portfolio-core/internal/modules/notify"
	"github.com/wahidu1/portfolio-core/internal/modules/settings"
	"github.com/wahidu1/portfolio-core/internal/pkg/mail"
	redisc "github.com/wahidu1/portfolio-core/internal/pkg/redis"
	"github.com/wahidu1/portfolio-core/internal/pkg/taskqueue"
)

// App bundles the HTTP server, database, redis and the task worker.
type App struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	db     *gorm.DB
	rc     *redisc.Client
	engine *gin.Engine
	server *http.Server
	worker *taskqueue.Worker

	cancelWorker context.CancelFunc
}

// New wires every component together.
func New(cfg *config.AppConfig, logger *zap.Logger) (*App, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.SeedDefaultSettings(db); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}

	rc, err := redisc.Connect(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(logger))
	engine.Use(cors.New(corsConfig(cfg)))
	engine.Use(middleware.RateLimit(rc))

	settingsSvc := settings.NewService(db)
	mailer := mail.New(cfg.Mail)
	notifySvc := notify.NewService(settingsSvc, mailer, cfg.Mail.From, logger)
	scheduler := taskqueue.NewService(rc)

	worker := taskqueue.NewWorker(rc, logger, cfg.WorkerCount)
	worker.Register(notify.TaskContactAck, notifySvc.HandleContactAck)

	a := &App{
		cfg:    cfg,
		logger: logger,
		db:     db,
		rc:     rc,
		engine: engine,
		worker: worker,
	}
	a.registerRoutes(settingsSvc, scheduler)
	return a, nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowAllOrigins = true
	}
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return c
}

// Run starts the worker pool and the HTTP server. It blocks until the server
// stops.
func (a *App) Run() error {
	workerCtx, cancel := context.WithCancel(context.Background())
	a.cancelWorker = cancel
	go a.worker.Run(workerCtx)

	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.logger.Info("server listening", zap.Int("port", a.cfg.Port))

	err := a.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server and the worker pool gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	if a.cancelWorker != nil {
		a.cancelWorker()
	}
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return a.rc.Raw().Close()
}

// Engine exposes the router. Used by tests.
func (a *App) Engine() *gin.Engine { return a.engine }
