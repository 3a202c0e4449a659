package handler

import (
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the account routes under basePath/auth. Update and
// delete require a verified access token; the rest are public.
func RegisterRoutes(router fiber.Router, h *AccountHandler, verifier middleware.AccessTokenVerifier) {
	auth := router.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/signin", h.SignIn)
	auth.Post("/refresh", h.Refresh)

	auth.Patch("/update", middleware.RequireAuth(verifier), h.Update)
	auth.Delete("/delete", middleware.RequireAuth(verifier), h.Delete)
}
