package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/handler"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
)

type countingRunner struct {
	stopped atomic.Bool
}

func (c *countingRunner) Run(ctx context.Context) {
	<-ctx.Done()
	c.stopped.Store(true)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_FromHandlers(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", FrontendAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.NotNil(t, s.apiServer)
	assert.NotNil(t, s.frontendServer)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	runner := &countingRunner{}
	s := &server{
		apiServer: newHTTPServer("api", "127.0.0.1:0", okHandler(), logger.Nop()),
		workers:   runner,
		logger:    logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
	assert.True(t, runner.stopped.Load(), "workers must be cancelled on shutdown")
}

func TestRun_ListenerFailureStopsEverything(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	runner := &countingRunner{}
	s := &server{
		apiServer:      newHTTPServer("api", busy.Addr().String(), okHandler(), logger.Nop()),
		frontendServer: newHTTPServer("frontend", "127.0.0.1:0", okHandler(), logger.Nop()),
		workers:        runner,
		logger:         logger.Nop(),
	}

	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after listener failure")
	}
	assert.True(t, runner.stopped.Load())
}
