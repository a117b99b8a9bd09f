package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/tapcode/internal/auth"
	"github.com/danmuck/tapcode/internal/gridfile"
	"github.com/danmuck/tapcode/internal/observability"
	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type gridResponse struct {
	Alphabet string     `json:"alphabet"`
	Marker   string     `json:"marker"`
	Rows     [][]string `json:"rows"`
}

type setGridRequest struct {
	Alphabet string `json:"alphabet"`
}

type encodeRequest struct {
	Message string `json:"message"`
}

type decodeRequest struct {
	Tapcode string `json:"tapcode"`
}

func (s *Server) RegisterRoutes() {
	r := s.router
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": serviceName,
			"version": version,
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   s.active.Load() != nil,
			"service": serviceName,
			"version": version,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/grid", func(c *gin.Context) {
		c.JSON(http.StatusOK, newGridResponse(s.active.Load()))
	})

	admin := s.adminRoutes()
	admin.PUT("/grid", func(c *gin.Context) {
		var req setGridRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		next, err := tapcode.New(req.Alphabet, s.active.Load().Marker())
		observability.RecordOperation(observability.OpSetGrid, err)
		if err != nil {
			writeError(c, err)
			return
		}
		s.active.Swap(next)
		s.logger.Info().Str("grid", next.Alphabet()).Msg("grid replaced")
		c.JSON(http.StatusOK, newGridResponse(next))
	})

	admin.POST("/grid/save", func(c *gin.Context) {
		err := s.store.Save(s.active.Load())
		observability.RecordOperation(observability.OpSaveGrid, err)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "path": s.store.Path()})
	})

	admin.POST("/grid/load", func(c *gin.Context) {
		next, err := s.store.Load(s.active.Load().Marker())
		observability.RecordOperation(observability.OpLoadGrid, err)
		if err != nil {
			writeError(c, err)
			return
		}
		s.active.Swap(next)
		s.logger.Info().Str("path", s.store.Path()).Str("grid", next.Alphabet()).Msg("grid loaded")
		c.JSON(http.StatusOK, newGridResponse(next))
	})

	r.POST("/encode", func(c *gin.Context) {
		var req encodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := s.active.Load().Encode(req.Message)
		observability.RecordOperation(observability.OpEncode, err)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tapcode": out})
	})

	r.POST("/decode", func(c *gin.Context) {
		var req decodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := s.active.Load().Decode(req.Tapcode)
		observability.RecordOperation(observability.OpDecode, err)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": out})
	})
}

// adminRoutes guards grid-mutating routes when an admin token is configured.
func (s *Server) adminRoutes() gin.IRoutes {
	if s.cfg.AdminToken == "" {
		return s.router
	}
	return s.router.Group("", auth.RequireToken(auth.StaticToken{Token: s.cfg.AdminToken}))
}

func newGridResponse(g *tapcode.Grid) gridResponse {
	rows := g.Rows()
	out := gridResponse{
		Alphabet: g.Alphabet(),
		Marker:   string(g.Marker()),
		Rows:     make([][]string, 0, tapcode.Size),
	}
	for _, row := range rows {
		cells := make([]string, 0, tapcode.Size)
		for _, r := range row {
			cells = append(cells, string(r))
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, gridfile.ErrGridFileUnreadable):
		return http.StatusNotFound
	case errors.Is(err, tapcode.ErrInvalidAlphabetLength),
		errors.Is(err, tapcode.ErrDuplicateCharacter),
		errors.Is(err, tapcode.ErrSeparatorCharacter),
		errors.Is(err, tapcode.ErrEmptyMessage),
		errors.Is(err, tapcode.ErrEmptyInput),
		errors.Is(err, tapcode.ErrCharacterNotInGrid),
		errors.Is(err, tapcode.ErrMalformedTapSequence),
		errors.Is(err, tapcode.ErrInvalidTapToken),
		errors.Is(err, tapcode.ErrInvalidCoordinates),
		errors.Is(err, gridfile.ErrInvalidGridFileLength):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
