package handler

import (
	"github.com/esterhugosson/Shareyoutravels-backend/internal/account/dto"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/account/service"
	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	userService *service.UserService
}

func NewAccountHandler(userService *service.UserService) *AccountHandler {
	return &AccountHandler{userService: userService}
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	c.Location(c.BaseURL() + c.Path() + "/" + user.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": user.ID,
	})
}

func (h *AccountHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	tokens, err := h.userService.SignIn(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AccountHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	tokens, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.NewValidation("invalid input")
	}

	user, err := h.userService.Update(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account updated successfully",
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Context(), middleware.UserID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
