package app

import (
	"wisma/config"
	"wisma/internal/controllers"
	"wisma/internal/database"
	"wisma/internal/handlers/middleware"
	"wisma/internal/logger"
	"wisma/internal/repositories"
	"wisma/internal/services"
)

type App struct {
	Database     database.DB
	Middleware   middleware.Middleware
	Config       config.Config
	Repositories repositories.Repository
	Services     services.Service
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New()

	service, err := services.New(db, config, repos)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	controller := controllers.New(service, repos, db)
	middlewares := middleware.New(db, config, repos, service)

	app := &App{
		Database:     db,
		Middleware:   middlewares,
		Config:       config,
		Repositories: repos,
		Services:     service,
		Controllers:  controller,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("app validation failed", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is not initialized")
	}
	if a.Services.Transaction == nil ||
		a.Services.Occupancy == nil ||
		a.Services.Installment == nil ||
		a.Services.Auth == nil {
		return log.ErrMsg("services are not initialized")
	}
	if a.Controllers.House == nil || a.Controllers.Stats == nil {
		return log.ErrMsg("controllers are not initialized")
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
