package middleware

import (
	"errors"
	"log"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler returns the centralized fiber error handler. Every handler
// and middleware funnels errors here; the taxonomy maps onto HTTP statuses
// and the response body is always {status, message}. Outside production the
// response additionally carries the error chain for debugging.
func NewErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := classify(err)

		log.Printf("error: %s %s -> %d: %v", c.Method(), c.Path(), status, err)

		body := fiber.Map{
			"status":  status,
			"message": message,
		}
		if !production {
			body["detail"] = err.Error()
		}

		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, string) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Error()
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrTokenExpired),
		errors.Is(err, apperr.ErrTokenInvalid),
		errors.Is(err, apperr.ErrRefreshTokenNotFound),
		errors.Is(err, apperr.ErrRefreshTokenRevoked),
		errors.Is(err, apperr.ErrRefreshTokenExpired):
		// One opaque message for every authentication failure so the
		// response shape never reveals which check rejected the caller.
		return fiber.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperr.ErrNotOwner):
		return fiber.StatusForbidden, "Forbidden"
	case errors.Is(err, apperr.ErrUserNotFound),
		errors.Is(err, apperr.ErrTravelNotFound),
		errors.Is(err, apperr.ErrPlaceNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, apperr.ErrDuplicateUser):
		return fiber.StatusConflict, err.Error()
	}

	return fiber.StatusInternalServerError, "Internal Server Error"
}
