package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingServer blocks in RunServer until Shutdown is called.
type blockingServer struct {
	stop     chan struct{}
	shutdown atomic.Int32
}

func (b *blockingServer) RunServer() { <-b.stop }

func (b *blockingServer) Shutdown() {
	if b.shutdown.Add(1) == 1 {
		close(b.stop)
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHTTPHandler)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHTTPHandler)
}

func TestNewServer_EmptyAddress(t *testing.T) {
	cfg := config.Defaults()
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHTTPAddress)
}

func TestNewServer(t *testing.T) {
	cfg := config.Defaults()
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	inner := &blockingServer{stop: make(chan struct{})}
	s := &server{httpServer: inner, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		s.run(ctx)
		close(finished)
	}()

	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.Equal(t, int32(1), inner.shutdown.Load())
}
