package seed

import (
	"time"
	"wisma/config"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seed loads a small consistent development dataset: two houses with one
// occupied, a few residents, due and spending categories, and an admin user.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	password, err := utils.HashPassword("password")
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	user := User{Name: "Admin", Email: "admin@example.com", Password: password}
	if err := db.Create(&user).Error; err != nil {
		return log.Err("failed to seed user", err)
	}

	houses := []House{
		{Number: "A-01", Status: HouseStatusActive},
		{Number: "A-02", Status: HouseStatusActive},
		{Number: "B-01", Status: HouseStatusInactive},
	}
	if err := db.Create(&houses).Error; err != nil {
		return log.Err("failed to seed houses", err)
	}

	residents := []Resident{
		{
			Name:           "Budi Santoso",
			MaritalStatus:  MaritalStatusMarried,
			OccupantStatus: OccupantStatusPermanent,
			MobileNumber:   stringPtr("081234567890"),
		},
		{
			Name:           "Siti Rahayu",
			MaritalStatus:  MaritalStatusSingle,
			OccupantStatus: OccupantStatusContract,
		},
	}
	if err := db.Create(&residents).Error; err != nil {
		return log.Err("failed to seed residents", err)
	}

	occupancy := OccupantHistory{
		HouseID:    houses[0].ID,
		ResidentID: residents[0].ID,
		StartDate:  date(2025, time.January, 1),
	}
	if err := db.Create(&occupancy).Error; err != nil {
		return log.Err("failed to seed occupancy", err)
	}

	payment := HousePayment{
		OccupantHistoryID: occupancy.ID,
		PaymentDate:       date(2025, time.January, 1),
		PaymentAmount:     decimal.NewFromInt(500000),
		PaymentStatus:     PaymentStatusPaid,
	}
	if err := db.Create(&payment).Error; err != nil {
		return log.Err("failed to seed house payment", err)
	}

	dueTypes := []DueType{
		{Name: "Iuran Keamanan", Amount: decimal.NewFromInt(50000)},
		{Name: "Iuran Kebersihan", Amount: decimal.NewFromInt(25000)},
	}
	if err := db.Create(&dueTypes).Error; err != nil {
		return log.Err("failed to seed due types", err)
	}

	spendingTypes := []SpendingType{
		{Name: "Gaji Satpam", Amount: decimal.NewFromInt(1500000)},
		{Name: "Perbaikan Jalan", Amount: decimal.NewFromInt(750000)},
	}
	if err := db.Create(&spendingTypes).Error; err != nil {
		return log.Err("failed to seed spending types", err)
	}

	log.Info("Seed complete")
	return nil
}
