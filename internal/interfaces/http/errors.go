package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	engine "github.com/jhoicas/backoffice-api/internal/domain/analytics"
)

// respondError traduce errores de dominio a {code, message} con el status HTTP que corresponde.
func respondError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	message := err.Error()
	switch {
	case errors.Is(err, engine.ErrInvalidRange):
		status, code = fiber.StatusBadRequest, "INVALID_RANGE"
	case errors.Is(err, engine.ErrUnknownPeriod):
		status, code = fiber.StatusBadRequest, "INVALID_PERIOD"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrStatusRejected):
		status, code = fiber.StatusUnprocessableEntity, "STATUS_REJECTED"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		message = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
