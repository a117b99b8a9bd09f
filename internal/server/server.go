package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/tapcode/internal/gridfile"
	"github.com/danmuck/tapcode/internal/observability"
	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName     = "tapcode-api"
	version         = "0.1.0"
	shutdownTimeout = 5 * time.Second
)

type Config struct {
	Addr        string
	CorsOrigins []string
	// AdminToken, when set, is required as a bearer token on grid-mutating routes.
	AdminToken string
}

// Server exposes the active grid over HTTP. Handlers read the grid through
// tapcode.Active so a PUT /grid never races an in-flight encode.
type Server struct {
	cfg      Config
	active   *tapcode.Active
	store    gridfile.Store
	router   *gin.Engine
	logger   zerolog.Logger
	appeared time.Time
}

func New(cfg Config, active *tapcode.Active, store gridfile.Store) *Server {
	if active == nil {
		active = tapcode.NewActive(nil)
	}
	observability.RegisterMetrics()
	logger := observability.ComponentLogger(serviceName)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  normalizeOrigins(cfg.CorsOrigins),
		AllowMethods:  []string{"GET", "POST", "PUT"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", observability.RequestIDHeader},
		ExposeHeaders: []string{observability.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		cfg:      cfg,
		active:   active,
		store:    store,
		router:   r,
		logger:   logger,
		appeared: time.Now(),
	}
	s.RegisterRoutes()
	return s
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
