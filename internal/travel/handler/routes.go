package handler

import (
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the travel and place routes under basePath/travels.
// The two public listings are registered before the :id routes so fiber does
// not capture them as travel ids.
func RegisterRoutes(router fiber.Router, th *TravelHandler, ph *PlaceHandler, verifier middleware.AccessTokenVerifier) {
	travels := router.Group("/travels")
	requireAuth := middleware.RequireAuth(verifier)

	// Public routes, no token required.
	travels.Get("/allTravels", th.ListPublic)
	travels.Get("/public-places", ph.ListPublic)

	travels.Get("/", requireAuth, th.ListMine)
	travels.Post("/", requireAuth, th.Create)
	travels.Get("/:id", requireAuth, th.GetByID)
	travels.Patch("/:id", requireAuth, th.Update)
	travels.Delete("/:id", requireAuth, th.Delete)

	places := travels.Group("/:id/places", requireAuth)
	places.Get("/", ph.ListForTravel)
	places.Post("/", ph.Add)
	places.Get("/:placeId", ph.Get)
	places.Patch("/:placeId", ph.Update)
	places.Delete("/:placeId", ph.Delete)
}
