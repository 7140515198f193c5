package repositories

type Repository struct {
	User            UserRepository
	House           HouseRepository
	Resident        ResidentRepository
	OccupantHistory OccupantHistoryRepository
	HousePayment    HousePaymentRepository
	DueType         DueTypeRepository
	DuePayment      DuePaymentRepository
	SpendingType    SpendingTypeRepository
	Spending        SpendingRepository
	Stats           StatsRepository
	Audit           AuditRepository
}

func New() Repository {
	return Repository{
		User:            NewUserRepository(),
		House:           NewHouseRepository(),
		Resident:        NewResidentRepository(),
		OccupantHistory: NewOccupantHistoryRepository(),
		HousePayment:    NewHousePaymentRepository(),
		DueType:         NewDueTypeRepository(),
		DuePayment:      NewDuePaymentRepository(),
		SpendingType:    NewSpendingTypeRepository(),
		Spending:        NewSpendingRepository(),
		Stats:           NewStatsRepository(),
		Audit:           NewAuditRepository(),
	}
}
