package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-profit-api/internal/application/dto"
	"github.com/jhoicas/marketplace-profit-api/internal/domain"
	"github.com/jhoicas/marketplace-profit-api/pkg/logger"
)

// errorStatus traduce errores de dominio a (status HTTP, código). El orden importa: los refinamientos primero.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrFeesExceedPrice):
		return fiber.StatusUnprocessableEntity, "FEES_EXCEED_PRICE"
	case errors.Is(err, domain.ErrTargetUnreachable):
		return fiber.StatusUnprocessableEntity, "TARGET_UNREACHABLE"
	case errors.Is(err, domain.ErrInfeasibleTarget):
		return fiber.StatusUnprocessableEntity, "INFEASIBLE_TARGET"
	case errors.Is(err, domain.ErrNotListed):
		return fiber.StatusNotFound, "NOT_LISTED"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde {code, message}. Los 500 se registran y no exponen el detalle.
func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		logger.FromContext(c.UserContext()).Error().
			Err(err).
			Str("method", c.Method()).
			Str("route", c.Route().Path).
			Msg("error interno")
		msg = "terjadi kesalahan internal"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
}

// paramInt64 lee un path param numérico; responde 400 si no lo es.
func paramInt64(c *fiber.Ctx, name string) (int64, bool, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_ID", Message: name + " harus berupa angka positif",
		})
	}
	return id, true, nil
}

// pageFromQuery limit/offset del query string, normalizados por DefaultPage.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	return page
}
