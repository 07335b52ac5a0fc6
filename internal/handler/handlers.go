package handler

import (
	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/handler/http"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
