package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"forms-service/internal/app/config"
	"forms-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestSecurityHeaders(t *testing.T) {
	middlewareInstance := newTestMiddlewares()

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/heartbeat/", nil)
	rr := httptest.NewRecorder()
	middlewareInstance.SecurityHeaders(testHandler).ServeHTTP(rr, req)

	assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"), "frame options header should be set on every response")
	assert.Equal(t, "1; mode=block", rr.Header().Get("X-XSS-Protection"), "xss protection header should be set on every response")
}

func TestRequestID(t *testing.T) {
	middlewareInstance := newTestMiddlewares()

	t.Run("Generates When Absent", func(t *testing.T) {
		var seen string
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		})

		req := httptest.NewRequest("GET", "/heartbeat/", nil)
		rr := httptest.NewRecorder()
		middlewareInstance.RequestID(testHandler).ServeHTTP(rr, req)

		assert.NotEmpty(t, seen, "a request ID should be generated")
		assert.Equal(t, seen, rr.Header().Get("X-Request-ID"), "the generated ID should be echoed in the response")
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest("GET", "/heartbeat/", nil)
		req.Header.Set("X-Request-ID", "client-id-1")
		rr := httptest.NewRecorder()
		middlewareInstance.RequestID(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", rr.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandler(t *testing.T) {
	middlewareInstance := newTestMiddlewares()

	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/forms/add_biobank/", nil)
	rr := httptest.NewRecorder()
	middlewareInstance.ErrorHandler(panicHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "boom", "panic detail must not reach the client")
}
