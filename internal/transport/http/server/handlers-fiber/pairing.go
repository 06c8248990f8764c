package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/ryosuke-horie/group-generator/internal/api"
	"github.com/ryosuke-horie/group-generator/internal/entities"
	"github.com/ryosuke-horie/group-generator/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostPairings runs one pairing search over the stored roster. A matched run
// returns 201; an exhausted attempt budget is a stored outcome, not an error,
// and returns 200 with status NO_SOLUTION.
func (h *Handler) PostPairings(c *fiber.Ctx) error {
	var body api.GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
		}
	}

	run, err := h.uc.GeneratePairing(c.Context(), entities.GenerateParams{
		Exclusions:  body.Exclusions,
		MaxAttempts: body.MaxAttempts,
	})
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusCreated
	if run.Status == entities.StatusNoSolution {
		status = http.StatusOK
	}
	return c.Status(status).JSON(mapper.ToAPIRun(*run))
}

// GetPairing returns a stored run with its pairs.
func (h *Handler) GetPairing(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid run id"))
	}

	run, err := h.uc.Run(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIRun(*run))
}

// GetPairings lists stored runs, newest first.
func (h *Handler) GetPairings(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")

	runs, err := h.uc.Runs(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.RunsResponse{Runs: mapper.ToAPIRunSummaries(runs)})
}
