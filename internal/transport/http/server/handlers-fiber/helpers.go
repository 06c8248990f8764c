package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/ryosuke-horie/group-generator/internal/api"
	"github.com/ryosuke-horie/group-generator/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrMissingColumn):
		status = http.StatusBadRequest
		code = api.BADREQUEST
		msg = err.Error()
	case errors.Is(err, entities.ErrRunNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "run not found"
	case errors.Is(err, entities.ErrOddPopulation):
		status = http.StatusUnprocessableEntity
		code = api.ODDPOPULATION
		msg = err.Error()
	case errors.Is(err, entities.ErrEmptyRoster):
		status = http.StatusConflict
		code = api.EMPTYROSTER
		msg = "no roster uploaded"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
