package http

import (
	"github.com/txgate/txgate/internal/codec"
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/service"
)

type Handler struct {
	services *service.Services
	wire     *codec.Codec

	logger *logger.Logger
}

func NewHandler(services *service.Services, wire *codec.Codec, logger *logger.Logger) *Handler {
	logger.Info().Int("format_version", wire.FormatVersion()).Msg("http handler created")
	return &Handler{
		services: services,
		wire:     wire,
		logger:   logger,
	}
}
