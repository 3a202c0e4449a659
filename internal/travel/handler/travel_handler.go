package handler

import (
	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/dto"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/service"
	"github.com/gofiber/fiber/v2"
)

type TravelHandler struct {
	travelService *service.TravelService
}

func NewTravelHandler(travelService *service.TravelService) *TravelHandler {
	return &TravelHandler{travelService: travelService}
}

func (h *TravelHandler) ListMine(c *fiber.Ctx) error {
	travels, err := h.travelService.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(travels)
}

// ListPublic serves the unauthenticated list of public travels.
func (h *TravelHandler) ListPublic(c *fiber.Ctx) error {
	travels, err := h.travelService.ListPublic(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(travels)
}

func (h *TravelHandler) GetByID(c *fiber.Ctx) error {
	travel, err := h.travelService.GetOwned(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(travel)
}

func (h *TravelHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTravelInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	travel, err := h.travelService.Create(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Travel created successfully.",
		"travel":  travel,
	})
}

func (h *TravelHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateTravelInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	travel, err := h.travelService.Update(c.Context(), c.Params("id"), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Travel updated successfully",
		"travel":  travel,
	})
}

func (h *TravelHandler) Delete(c *fiber.Ctx) error {
	if err := h.travelService.Delete(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
