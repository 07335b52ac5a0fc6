package http

import (
	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/service"
)

type Handler struct {
	services *service.Services

	serverCfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		serverCfg: serverCfg,
		logger:    logger,
	}
}
