package httpserver_test

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/Zerubabel-J/HeroCraft/internal/httpserver"
	"github.com/Zerubabel-J/HeroCraft/internal/presets"
)

// serverOption customises the HTTP server configuration for tests.
type serverOption func(*httpserver.Config)

func withPresets(store *presets.Store) serverOption {
	return func(cfg *httpserver.Config) {
		cfg.Presets = store
	}
}

// newServer constructs an httptest server running the preview stack with embedded presets.
func newServer(t testing.TB, opts ...serverOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address: ":0",
		Logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
