package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextDefaultsToNoop(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	require.NotNil(t, FromContext(nil))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestWriterLoggerUsesStructuredKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("visible", zap.String("preset", "default"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "WARN", entry["severity"])
	require.Equal(t, "visible", entry["message"])
	require.Equal(t, "default", entry["preset"])
	require.Contains(t, entry, "timestamp")
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	require.Equal(t, zapcore.InfoLevel, parseLevel("").Level())
	require.Equal(t, zapcore.InfoLevel, parseLevel("chatty").Level())
	require.Equal(t, zapcore.DebugLevel, parseLevel(" DEBUG ").Level())
}

func TestRequestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(InjectLoggerMiddleware(zap.New(core)))
	router.Use(RequestLoggerMiddleware)
	router.Get("/sections/{preset}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Debug("rendering")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	req := httptest.NewRequest(http.MethodGet, "/sections/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "rendering", entries[0].Message)

	done := entries[1]
	require.Equal(t, "request completed", done.Message)
	require.Equal(t, zapcore.WarnLevel, done.Level)
	fields := done.ContextMap()
	require.Equal(t, "/sections/{preset}", fields["route"])
	require.Equal(t, "/sections/nope", fields["path"])
	require.EqualValues(t, http.StatusNotFound, fields["status"])
	require.EqualValues(t, len("missing"), fields["bytes"])
	require.NotEmpty(t, fields["request_id"])
}
