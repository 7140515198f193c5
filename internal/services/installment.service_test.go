package services

import (
	"context"
	"testing"
	"time"
	"wisma/internal/database"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInstallmentService(t *testing.T) (database.DB, *InstallmentService) {
	db := setupSQLiteDB(t)
	repos := repositories.New()
	transaction := NewTransactionService(db)
	occupancy := NewOccupancyService(repos, transaction)

	return db, NewInstallmentService(repos, occupancy, transaction)
}

func TestInstallmentService_GenerateDuePayments_RejectsZeroMonths(t *testing.T) {
	db, service := setupInstallmentService(t)

	_, err := service.GenerateDuePayments(
		context.Background(), 1, 1, mustDate(t, 2025, time.January, 1), 0, nil,
	)
	assert.ErrorIs(t, err, ErrInvalidMonthCount)

	var count int64
	require.NoError(t, db.SQL.Model(&DuePayment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestInstallmentService_GenerateDuePayments_MonthSpacedSeries(t *testing.T) {
	db, service := setupInstallmentService(t)

	resident := Resident{Name: "Budi", OccupantStatus: OccupantStatusPermanent}
	require.NoError(t, db.SQL.Create(&resident).Error)
	dueType := DueType{Name: "Iuran Keamanan", Amount: decimal.NewFromInt(50000)}
	require.NoError(t, db.SQL.Create(&dueType).Error)

	payments, err := service.GenerateDuePayments(
		context.Background(), resident.ID, dueType.ID,
		mustDate(t, 2025, time.January, 31), 3, nil,
	)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	assert.Equal(t, "2025-01-31", utils.FormatDate(payments[0].Date))
	assert.Equal(t, "2025-02-28", utils.FormatDate(payments[1].Date))
	assert.Equal(t, "2025-03-31", utils.FormatDate(payments[2].Date))

	var count int64
	require.NoError(t, db.SQL.Model(&DuePayment{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestInstallmentService_GenerateHousePayments_CreatesOccupancyWhenMissing(t *testing.T) {
	db, service := setupInstallmentService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	start := mustDate(t, 2025, time.February, 1)
	payments, err := service.GenerateHousePayments(
		context.Background(), house.ID, resident.ID, start,
		decimal.NewFromInt(400000), true, 2, nil,
	)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	var occupancy OccupantHistory
	require.NoError(t, db.SQL.
		Where("house_id = ? AND resident_id = ? AND end_date IS NULL", house.ID, resident.ID).
		First(&occupancy).Error)
	assert.True(t, occupancy.StartDate.Equal(start))

	for _, payment := range payments {
		assert.Equal(t, occupancy.ID, payment.OccupantHistoryID)
		assert.Equal(t, PaymentStatusPaid, payment.PaymentStatus)
	}
	assert.Equal(t, "2025-02-01", utils.FormatDate(payments[0].PaymentDate))
	assert.Equal(t, "2025-03-01", utils.FormatDate(payments[1].PaymentDate))
}

func TestInstallmentService_GenerateHousePayments_ReusesOpenOccupancy(t *testing.T) {
	db, service := setupInstallmentService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	occupancy := OccupantHistory{
		HouseID:    house.ID,
		ResidentID: resident.ID,
		StartDate:  mustDate(t, 2025, time.January, 1),
	}
	require.NoError(t, db.SQL.Create(&occupancy).Error)

	payments, err := service.GenerateHousePayments(
		context.Background(), house.ID, resident.ID,
		mustDate(t, 2025, time.March, 1), decimal.NewFromInt(400000), false, 1, nil,
	)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	assert.Equal(t, occupancy.ID, payments[0].OccupantHistoryID)
	assert.Equal(t, PaymentStatusUnpaid, payments[0].PaymentStatus)

	var count int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).
		Where("house_id = ?", house.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestInstallmentService_GenerateHousePayments_RejectsOccupiedHouse(t *testing.T) {
	db, service := setupInstallmentService(t)
	house, holder, other := seedHouseAndResidents(t, db)

	occupancy := OccupantHistory{
		HouseID:    house.ID,
		ResidentID: holder.ID,
		StartDate:  mustDate(t, 2025, time.January, 1),
	}
	require.NoError(t, db.SQL.Create(&occupancy).Error)

	_, err := service.GenerateHousePayments(
		context.Background(), house.ID, other.ID,
		mustDate(t, 2025, time.March, 1), decimal.NewFromInt(400000), true, 1, nil,
	)
	assert.ErrorIs(t, err, ErrHouseOccupied)

	var open int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).
		Where("house_id = ? AND end_date IS NULL", house.ID).
		Count(&open).Error)
	assert.EqualValues(t, 1, open, "occupied house must keep a single open occupancy")

	var payments int64
	require.NoError(t, db.SQL.Model(&HousePayment{}).Count(&payments).Error)
	assert.Zero(t, payments)
}

func TestInstallmentService_GenerateHousePayments_RejectsZeroMonths(t *testing.T) {
	db, service := setupInstallmentService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	_, err := service.GenerateHousePayments(
		context.Background(), house.ID, resident.ID,
		mustDate(t, 2025, time.January, 1), decimal.NewFromInt(100000), true, 0, nil,
	)
	assert.ErrorIs(t, err, ErrInvalidMonthCount)

	var count int64
	require.NoError(t, db.SQL.Model(&HousePayment{}).Count(&count).Error)
	assert.Zero(t, count)
}
