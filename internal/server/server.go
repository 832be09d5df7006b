package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/handler"
	"github.com/mep-tools/bracket-tool/internal/logger"
)

type server struct {
	apiServer      *httpServer
	frontendServer *httpServer
	workers        BackgroundRunner
	logger         *logger.Logger
}

// NewServer creates a listener for every handler that was built. workers
// may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{workers: workers, logger: logger}

	if handlers.HTTP != nil {
		s.apiServer = newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), logger)
	}
	if handlers.Frontend != nil {
		s.frontendServer = newHTTPServer("frontend", cfg.FrontendAddress, handlers.Frontend.Init(), logger)
	}

	if s.apiServer == nil && s.frontendServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	if s.apiServer != nil {
		s.apiServer.Shutdown()
	}
	if s.frontendServer != nil {
		s.frontendServer.Shutdown()
	}
}

// run serves until ctx is done or a listener fails. In both cases all
// listeners are shut down and the workers are awaited before returning.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	for _, srv := range []*httpServer{s.apiServer, s.frontendServer} {
		if srv == nil {
			continue
		}
		wg.Add(1)
		go func(srv *httpServer) {
			defer wg.Done()
			if err := srv.RunServer(); err != nil {
				errs <- err
				cancel()
			}
		}(srv)
	}

	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	<-ctx.Done()
	s.logger.Info().Msg("shutting down")
	s.Shutdown()
	wg.Wait()
	close(errs)

	var err error
	for e := range errs {
		err = errors.Join(err, e)
	}
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}
