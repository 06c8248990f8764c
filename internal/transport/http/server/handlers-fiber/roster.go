package handlers_fiber

import (
	"net/http"

	"github.com/ryosuke-horie/group-generator/internal/api"
	"github.com/ryosuke-horie/group-generator/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostRoster replaces the stored roster.
func (h *Handler) PostRoster(c *fiber.Ctx) error {
	var body api.UploadRosterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	count, err := h.uc.UploadRoster(c.Context(), mapper.FromAPIPeople(body.People))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.UploadRosterResponse{Count: count})
}

// GetRoster returns the stored roster.
func (h *Handler) GetRoster(c *fiber.Ctx) error {
	people, err := h.uc.Roster(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.RosterResponse{People: mapper.ToAPIPeople(people)})
}
