package services

import (
	"wisma/config"
	"wisma/internal/database"
	"wisma/internal/repositories"
)

type Service struct {
	Transaction *TransactionService
	Occupancy   *OccupancyService
	Installment *InstallmentService
	Auth        *AuthService
}

func New(db database.DB, config config.Config, repos repositories.Repository) (Service, error) {
	transactionService := NewTransactionService(db)
	occupancyService := NewOccupancyService(repos, transactionService)
	installmentService := NewInstallmentService(repos, occupancyService, transactionService)
	authService := NewAuthService(db, repos, config)

	return Service{
		Transaction: transactionService,
		Occupancy:   occupancyService,
		Installment: installmentService,
		Auth:        authService,
	}, nil
}
