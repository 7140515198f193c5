package handlers

import (
	"wisma/internal/app"
	"wisma/internal/handlers/middleware"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()

	protected := api.Group("", app.Middleware.RequireAuth())
	NewHouseHandler(*app, protected).Register()
	NewResidentHandler(*app, protected).Register()
	NewOccupancyHandler(*app, protected).Register()
	NewHousePaymentHandler(*app, protected).Register()
	NewDueTypeHandler(*app, protected).Register()
	NewDuePaymentHandler(*app, protected).Register()
	NewSpendingTypeHandler(*app, protected).Register()
	NewSpendingHandler(*app, protected).Register()
	NewStatsHandler(*app, protected).Register()

	return nil
}
