package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log.Load()
	defer log.Store(originalLog)

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log.Load())
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log.Load())
	})
}

func TestL(t *testing.T) {
	originalLog := log.Load()
	defer log.Store(originalLog)

	// Force nil to test lazy initialization
	log.Store(nil)
	os.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log.Load())
}

func TestL_ConcurrentFirstUse(t *testing.T) {
	originalLog := log.Load()
	defer log.Store(originalLog)

	log.Store(nil)
	os.Setenv("APP_ENV", "test")

	const callers = 16
	results := make(chan *zap.Logger, callers)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			results <- L()
		}()
	}
	start.Done()
	done.Wait()
	close(results)

	first := <-results
	assert.NotNil(t, first)
	for l := range results {
		assert.Same(t, first, l)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	reqID := "req-123"

	t.Run("WithRequestID", func(t *testing.T) {
		newCtx := WithRequestID(ctx, reqID)
		assert.Equal(t, reqID, RequestIDFrom(newCtx))
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, "", RequestIDFrom(ctx))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	obsLogger := zap.New(core)

	originalLog := log.Load()
	log.Store(obsLogger)
	defer log.Store(originalLog)

	t.Run("WithRequestID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-abc")

		FromCtx(ctx).Info("with id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		assert.Equal(t, "req-abc", logs[0].ContextMap()["request_id"])
	})

	t.Run("WithoutRequestID", func(t *testing.T) {
		FromCtx(context.Background()).Info("without id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["request_id"]
		assert.False(t, ok)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFrom(r.Context()))
	})
	handler := RequestIDMiddleware(nextHandler)

	t.Run("Generates ID when missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "fixed-id")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	obsLogger := zap.New(core)

	originalLog := log.Load()
	log.Store(obsLogger)
	defer log.Store(originalLog)

	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/flowers", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	logs := observed.TakeAll()
	assert.Len(t, logs, 1)
	assert.Equal(t, "incoming request", logs[0].Message)
	assert.Equal(t, "/flowers", logs[0].ContextMap()["path"])
}
