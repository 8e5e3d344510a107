package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchradar/internal/domain"
	"launchradar/internal/service"
)

// Server exposes the pipeline's control surface over HTTP. Errors from the
// manager are translated to structured payloads here; the pipeline itself
// never crashes on a bad request.
type Server struct {
	manager       *service.Manager
	retentionDays int
	logger        *slog.Logger
}

func NewServer(manager *service.Manager, retentionDays int, logger *slog.Logger) *Server {
	return &Server{
		manager:       manager,
		retentionDays: retentionDays,
		logger:        logger.With("component", "api"),
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.health)
	r.GET("/status", s.status)
	r.POST("/collect", s.collectOnce)
	r.POST("/process", s.process)
	r.POST("/cleanup", s.cleanup)
	r.POST("/collectors/start", s.startAll)
	r.POST("/collectors/stop", s.stopAll)
	r.POST("/collectors/:source/start", s.startSource)
	r.POST("/collectors/:source/stop", s.stopSource)

	return r
}

func (s *Server) health(c *gin.Context) {
	report := s.manager.HealthCheck(c.Request.Context())

	code := http.StatusOK
	if report.Overall == domain.Unhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}

func (s *Server) status(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.GetStatus(c.Request.Context()))
}

func (s *Server) collectOnce(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.CollectOnce(c.Request.Context()))
}

func (s *Server) process(c *gin.Context) {
	created, err := s.manager.ProcessUnprocessed(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"opportunities_created": created})
}

func (s *Server) cleanup(c *gin.Context) {
	days := s.retentionDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}

	deleted, err := s.manager.Cleanup(c.Request.Context(), days)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "days_kept": days})
}

func (s *Server) startAll(c *gin.Context) {
	if err := s.manager.StartAll(); err != nil {
		c.JSON(http.StatusOK, gin.H{"started": "partial", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"started": "all"})
}

func (s *Server) stopAll(c *gin.Context) {
	s.manager.StopAll()
	c.JSON(http.StatusOK, gin.H{"stopped": "all"})
}

func (s *Server) startSource(c *gin.Context) {
	source := c.Param("source")
	if err := s.manager.StartSource(source); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"started": source})
}

func (s *Server) stopSource(c *gin.Context) {
	source := c.Param("source")
	if err := s.manager.StopSource(source); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stopped": source})
}

func (s *Server) fail(c *gin.Context, err error) {
	var configErr *domain.ConfigError

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAlreadyRunning):
		code = http.StatusConflict
	case errors.Is(err, domain.ErrUnknownSource):
		code = http.StatusNotFound
	case errors.As(err, &configErr):
		code = http.StatusBadRequest
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
