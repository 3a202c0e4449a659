package handler

import (
	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/dto"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/travel/service"
	"github.com/gofiber/fiber/v2"
)

type PlaceHandler struct {
	placeService *service.PlaceService
}

func NewPlaceHandler(placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

func (h *PlaceHandler) ListForTravel(c *fiber.Ctx) error {
	places, err := h.placeService.ListForTravel(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(places)
}

// ListPublic serves every place belonging to a public travel, without
// authentication.
func (h *PlaceHandler) ListPublic(c *fiber.Ctx) error {
	places, err := h.placeService.ListPublic(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(places)
}

func (h *PlaceHandler) Get(c *fiber.Ctx) error {
	place, err := h.placeService.Get(c.Context(), c.Params("id"), c.Params("placeId"), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(place)
}

func (h *PlaceHandler) Add(c *fiber.Ctx) error {
	var input dto.CreatePlaceInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	place, err := h.placeService.Add(c.Context(), c.Params("id"), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(place)
}

func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdatePlaceInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	place, err := h.placeService.Update(c.Context(), c.Params("id"), c.Params("placeId"), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(place)
}

func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	if err := h.placeService.Delete(c.Context(), c.Params("id"), c.Params("placeId"), middleware.UserID(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
