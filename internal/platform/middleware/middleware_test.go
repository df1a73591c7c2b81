package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"statehouse/internal/platform/metrics"
	pkgtestutil "statehouse/pkg/testutil"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	pkgtestutil.Get(t, h, "/bills?jurisdiction=ne")
	assert.Contains(t, buf.String(), `"path":"/bills"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := pkgtestutil.Get(t, h, "/")
	pkgtestutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestLatency(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(Latency(m))
	r.Get("/bills/{jurisdiction}/{session}/{identifier}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	pkgtestutil.Get(t, r, "/bills/ne/2021/LB1")
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}
