// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/ryosuke-horie/group-generator/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the pairing service over HTTP using the service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/roster", h.PostRoster)
	app.Get("/roster", h.GetRoster)
	app.Post("/pairings", h.PostPairings)
	app.Get("/pairings", h.GetPairings)
	app.Get("/pairings/:id", h.GetPairing)
}
