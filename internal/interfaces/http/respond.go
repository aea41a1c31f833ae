package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/domain"
)

// respond y fail construyen el sobre común { success, message?, data? } de
// todas las respuestas de la API.

func respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Data: data})
}

func respondMsg(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message})
}

// handleError es el único traductor de errores de dominio a códigos HTTP.
// Cualquier error fuera de las clases conocidas se responde como 500 con un
// mensaje genérico; el detalle queda en el log, nunca en el cliente.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case domain.IsValidation(err), domain.IsConflict(err):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return fail(c, fiber.StatusInternalServerError, "error interno del servidor")
	}
}
