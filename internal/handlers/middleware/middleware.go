package middleware

import (
	"wisma/config"
	"wisma/internal/database"
	"wisma/internal/logger"
	"wisma/internal/repositories"
	"wisma/internal/services"
)

type Middleware struct {
	DB          database.DB
	userRepo    repositories.UserRepository
	authService *services.AuthService
	Config      config.Config
	log         logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	services services.Service,
) Middleware {
	return Middleware{
		DB:          db,
		userRepo:    repos.User,
		authService: services.Auth,
		Config:      config,
		log:         logger.New("middleware"),
	}
}
