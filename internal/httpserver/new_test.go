package httpserver

import (
	"testing"
	"time"

	"engagement-srv/config"
	"engagement-srv/pkg/log"
)

func TestNew(t *testing.T) {
	logger := log.NewNop()
	cfg := &config.Config{}

	t.Run("defaults the shutdown timeout", func(t *testing.T) {
		srv, err := New(logger, Config{Mode: "test", Port: 8080, Config: cfg})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if srv.shutdownTimeout != defaultShutdownTimeout {
			t.Errorf("shutdown timeout = %v, want %v", srv.shutdownTimeout, defaultShutdownTimeout)
		}
	})

	t.Run("keeps an explicit shutdown timeout", func(t *testing.T) {
		srv, err := New(logger, Config{Mode: "test", Port: 8080, Config: cfg, ShutdownTimeout: 3 * time.Second})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if srv.shutdownTimeout != 3*time.Second {
			t.Errorf("shutdown timeout = %v, want 3s", srv.shutdownTimeout)
		}
	})

	t.Run("rejects a missing port", func(t *testing.T) {
		if _, err := New(logger, Config{Mode: "test", Config: cfg}); err == nil {
			t.Error("expected an error without a port")
		}
	})

	t.Run("rejects a missing logger", func(t *testing.T) {
		if _, err := New(nil, Config{Mode: "test", Port: 8080, Config: cfg}); err == nil {
			t.Error("expected an error without a logger")
		}
	})

	t.Run("rejects a missing config", func(t *testing.T) {
		if _, err := New(logger, Config{Mode: "test", Port: 8080}); err == nil {
			t.Error("expected an error without service config")
		}
	})
}
