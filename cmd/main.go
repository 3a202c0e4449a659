package main

import (
	"context"
	"log"

	"github.com/esterhugosson/Shareyoutravels-backend/config"
	"github.com/esterhugosson/Shareyoutravels-backend/db"
	accounthandler "github.com/esterhugosson/Shareyoutravels-backend/internal/account/handler"
	accountrepo "github.com/esterhugosson/Shareyoutravels-backend/internal/account/repository/postgres"
	accountservice "github.com/esterhugosson/Shareyoutravels-backend/internal/account/service"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	travelhandler "github.com/esterhugosson/Shareyoutravels-backend/internal/travel/handler"
	travelrepo "github.com/esterhugosson/Shareyoutravels-backend/internal/travel/repository/postgres"
	travelservice "github.com/esterhugosson/Shareyoutravels-backend/internal/travel/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer dbPool.Close()

	userRepo := accountrepo.NewPostgresRepository(dbPool)
	tokenService := accountservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := accountservice.NewUserService(userRepo, tokenService, cfg.MaxActiveRefreshTokens)
	accountHandler := accounthandler.NewAccountHandler(userService)

	travelRepo := travelrepo.NewTravelRepository(dbPool)
	placeRepo := travelrepo.NewPlaceRepository(dbPool)
	travelService := travelservice.NewTravelService(travelRepo)
	placeService := travelservice.NewPlaceService(placeRepo, travelService)
	travelHandler := travelhandler.NewTravelHandler(travelService)
	placeHandler := travelhandler.NewPlaceHandler(placeService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(cfg.IsProduction()),
	})

	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(recover.New())

	api := app.Group(cfg.BasePath)
	accounthandler.RegisterRoutes(api, accountHandler, tokenService)
	travelhandler.RegisterRoutes(api, travelHandler, placeHandler, tokenService)

	log.Printf("listening on :%s (%s)", cfg.Port, cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
