package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/esterhugosson/Shareyoutravels-backend/internal/account/service"
	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// AccessTokenVerifier is the slice of the token service the middleware needs.
type AccessTokenVerifier interface {
	VerifyAccessToken(tokenString string) (*service.JWTCustomClaims, error)
}

// RequireAuth extracts and verifies the bearer access token, storing the
// authenticated user id in the request locals. The client always sees a
// uniform Unauthorized; expired vs malformed is only distinguished in logs.
func RequireAuth(verifier AccessTokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return apperr.ErrTokenInvalid
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			return apperr.ErrTokenInvalid
		}

		claims, err := verifier.VerifyAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, apperr.ErrTokenExpired) {
				log.Printf("auth: expired access token on %s %s", c.Method(), c.Path())
			} else {
				log.Printf("auth: invalid access token on %s %s", c.Method(), c.Path())
			}
			return err
		}

		c.Locals(userIDKey, claims.UserID)

		return c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth, or "" on
// routes that bypass it.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
