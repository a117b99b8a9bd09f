package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)

	before := testutil.ToFloat64(cipherOperations.WithLabelValues(OpEncode, "error"))
	RecordOperation(OpEncode, errors.New("boom"))
	RecordOperation(OpEncode, nil)
	after := testutil.ToFloat64(cipherOperations.WithLabelValues(OpEncode, "error"))
	if after-before != 1 {
		t.Fatalf("expected one error increment, got %v", after-before)
	}

	log.Debug().Msg("observability/metrics: registration idempotent and recording paths executed")
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.Nop()), RequestMetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDHeader))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	minted := rr.Header().Get(RequestIDHeader)
	if minted == "" || rr.Body.String() != minted {
		t.Fatalf("expected minted request id, header=%q body=%q", minted, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "caller-id" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}
