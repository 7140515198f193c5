package controllers

import (
	"wisma/internal/database"
	"wisma/internal/repositories"
	"wisma/internal/services"

	authController "wisma/internal/controllers/auth"
	duePaymentsController "wisma/internal/controllers/duepayments"
	dueTypesController "wisma/internal/controllers/duetypes"
	housePaymentsController "wisma/internal/controllers/housepayments"
	housesController "wisma/internal/controllers/houses"
	occupanciesController "wisma/internal/controllers/occupancies"
	residentsController "wisma/internal/controllers/residents"
	spendingsController "wisma/internal/controllers/spendings"
	spendingTypesController "wisma/internal/controllers/spendingtypes"
	statsController "wisma/internal/controllers/stats"
)

type Controllers struct {
	Auth          authController.AuthControllerInterface
	House         housesController.HouseControllerInterface
	Resident      residentsController.ResidentControllerInterface
	Occupancy     occupanciesController.OccupancyControllerInterface
	HousePayment  housePaymentsController.HousePaymentControllerInterface
	DueType       dueTypesController.DueTypeControllerInterface
	DuePayment    duePaymentsController.DuePaymentControllerInterface
	SpendingType  spendingTypesController.SpendingTypeControllerInterface
	Spending      spendingsController.SpendingControllerInterface
	Stats         statsController.StatsControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:         authController.New(services),
		House:        housesController.New(repos, db),
		Resident:     residentsController.New(repos, db),
		Occupancy:    occupanciesController.New(repos, services, db),
		HousePayment: housePaymentsController.New(repos, services, db),
		DueType:      dueTypesController.New(repos, db),
		DuePayment:   duePaymentsController.New(repos, services, db),
		SpendingType: spendingTypesController.New(repos, db),
		Spending:     spendingsController.New(repos, db),
		Stats:        statsController.New(repos, db),
	}
}
