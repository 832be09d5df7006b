package handler

import (
	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/handler/frontend"
	"github.com/mep-tools/bracket-tool/internal/handler/http"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/web"
)

type Handlers struct {
	HTTP     *http.Handler
	Frontend *frontend.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.FrontendAddress != "" {
		handlers.Frontend = frontend.NewHandler(web.Assets(), cfg.PublicAPIBase, logger)
	}

	if handlers.HTTP == nil && handlers.Frontend == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
