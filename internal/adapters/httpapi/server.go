package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nayeemz/bdtradesim/config"
	"github.com/nayeemz/bdtradesim/internal/adapters/storage"
	"github.com/nayeemz/bdtradesim/internal/domain"
	"github.com/nayeemz/bdtradesim/internal/ports"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// SimRequest is the body of POST /api/simulate.
type SimRequest struct {
	Scenario  string `json:"scenario" binding:"required"`
	Seed      uint64 `json:"seed"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// RunFunc executes one simulation on demand. The server persists the result
// itself; implementations only run it.
type RunFunc func(ctx context.Context, req SimRequest) (*domain.RunResult, error)

// Server exposes stored runs and on-demand simulation over HTTP.
type Server struct {
	cfg   config.APIConfig
	store ports.RunStore
	run   RunFunc
	log   *slog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewServer wires the read API over the store plus the simulate endpoint.
// run may be nil, in which case POST /api/simulate answers 503.
func NewServer(cfg config.APIConfig, store ports.RunStore, run RunFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		store:    store,
		run:      run,
		log:      logger,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Handler builds the full HTTP handler: gin routes wrapped in CORS.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.rateLimit())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/runs", s.listRuns)
		api.GET("/runs/:id", s.getRun)
		api.GET("/runs/:id/years", s.getYears)
		api.POST("/simulate", s.simulate)
	}

	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http api listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// listRuns handles GET /api/runs.
func (s *Server) listRuns(c *gin.Context) {
	runs, err := s.store.ListRuns(c.Request.Context(), 100)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if runs == nil {
		runs = []domain.RunSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// getRun handles GET /api/runs/:id.
func (s *Server) getRun(c *gin.Context) {
	summary, err := s.store.GetRun(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, storage.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	case err != nil:
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getYears handles GET /api/runs/:id/years.
func (s *Server) getYears(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.store.GetRun(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	metrics, err := s.store.YearMetrics(c.Request.Context(), id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": id, "years": metrics})
}

// simulate handles POST /api/simulate: run, persist, answer with the summary.
func (s *Server) simulate(c *gin.Context) {
	if s.run == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation disabled"})
		return
	}

	var req SimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.run(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.SaveRun(c.Request.Context(), result); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	final, _ := result.FinalYear()
	c.JSON(http.StatusCreated, gin.H{
		"run_id":     result.Metadata.RunID,
		"scenario":   result.Metadata.Scenario,
		"start_year": result.Metadata.StartYear,
		"end_year":   result.Metadata.EndYear,
		"seed":       result.Metadata.Seed,
		"final":      final.Aggregates,
	})
}

// rateLimit throttles each client IP to cfg.RateLimit requests per second.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.RateLimit <= 0 {
			c.Next()
			return
		}
		if !s.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (s *Server) limiterFor(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst)
		s.limiters[ip] = l
	}
	return l
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	s.log.Error("request failed", "path", c.FullPath(), "err", err)
	c.JSON(code, gin.H{"error": "internal error"})
}
