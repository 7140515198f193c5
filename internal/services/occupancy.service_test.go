package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"wisma/internal/database"
	. "wisma/internal/models"
	"wisma/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLiteDB(t *testing.T) database.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	return db
}

func setupOccupancyService(t *testing.T) (database.DB, *OccupancyService) {
	db := setupSQLiteDB(t)
	repos := repositories.New()
	transaction := NewTransactionService(db)

	return db, NewOccupancyService(repos, transaction)
}

func seedHouseAndResidents(t *testing.T, db database.DB) (House, Resident, Resident) {
	house := House{Number: "A-01"}
	require.NoError(t, db.SQL.Create(&house).Error)

	first := Resident{Name: "Budi", OccupantStatus: OccupantStatusContract}
	require.NoError(t, db.SQL.Create(&first).Error)

	second := Resident{Name: "Siti", OccupantStatus: OccupantStatusPermanent}
	require.NoError(t, db.SQL.Create(&second).Error)

	return house, first, second
}

func mustDate(t *testing.T, year int, month time.Month, day int) time.Time {
	t.Helper()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestOccupancyService_Assign_CreatesOccupancyAndPayment(t *testing.T) {
	db, service := setupOccupancyService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	effective := mustDate(t, 2025, time.March, 1)
	amount := decimal.NewFromInt(500000)

	occupancy, err := service.Assign(
		context.Background(), house.ID, resident.ID, effective, amount, nil,
	)
	require.NoError(t, err)
	require.NotNil(t, occupancy)

	assert.Equal(t, house.ID, occupancy.HouseID)
	assert.Equal(t, resident.ID, occupancy.ResidentID)
	assert.True(t, occupancy.IsOpen())

	var payments []HousePayment
	require.NoError(t, db.SQL.
		Where("occupant_history_id = ?", occupancy.ID).
		Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, PaymentStatusPaid, payments[0].PaymentStatus)
	assert.True(t, amount.Equal(payments[0].PaymentAmount))

	var audits []AuditLog
	require.NoError(t, db.SQL.Where("action = ?", AuditActionAssignHouse).Find(&audits).Error)
	assert.Len(t, audits, 1)
}

func TestOccupancyService_Assign_ClosesPriorOccupancy(t *testing.T) {
	db, service := setupOccupancyService(t)
	house, first, second := seedHouseAndResidents(t, db)

	_, err := service.Assign(
		context.Background(), house.ID, first.ID,
		mustDate(t, 2025, time.January, 1), decimal.NewFromInt(400000), nil,
	)
	require.NoError(t, err)

	handover := mustDate(t, 2025, time.June, 15)
	replacement, err := service.Assign(
		context.Background(), house.ID, second.ID, handover, decimal.NewFromInt(450000), nil,
	)
	require.NoError(t, err)

	var prior OccupantHistory
	require.NoError(t, db.SQL.
		Where("house_id = ? AND resident_id = ?", house.ID, first.ID).
		First(&prior).Error)
	require.NotNil(t, prior.EndDate)
	assert.True(t, prior.EndDate.Equal(handover))

	var open []OccupantHistory
	require.NoError(t, db.SQL.
		Where("house_id = ? AND end_date IS NULL", house.ID).
		Find(&open).Error)
	require.Len(t, open, 1)
	assert.Equal(t, replacement.ID, open[0].ID)
	assert.Equal(t, second.ID, open[0].ResidentID)
}

func TestOccupancyService_EndContract(t *testing.T) {
	db, service := setupOccupancyService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	_, err := service.Assign(
		context.Background(), house.ID, resident.ID,
		mustDate(t, 2025, time.February, 1), decimal.NewFromInt(300000), nil,
	)
	require.NoError(t, err)

	endDate := mustDate(t, 2025, time.August, 31)
	ended, err := service.EndContract(context.Background(), house.ID, endDate)
	require.NoError(t, err)
	require.NotNil(t, ended.EndDate)
	assert.True(t, ended.EndDate.Equal(endDate))

	var open int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).
		Where("house_id = ? AND end_date IS NULL", house.ID).
		Count(&open).Error)
	assert.Zero(t, open)
}

func TestOccupancyService_EndContract_NothingToEnd(t *testing.T) {
	db, service := setupOccupancyService(t)
	house, _, _ := seedHouseAndResidents(t, db)

	_, err := service.EndContract(
		context.Background(), house.ID, mustDate(t, 2025, time.May, 1),
	)
	assert.ErrorIs(t, err, ErrNothingToEnd)

	var count int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOccupancyService_DeleteOccupancy_RemovesPayments(t *testing.T) {
	db, service := setupOccupancyService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	occupancy, err := service.Assign(
		context.Background(), house.ID, resident.ID,
		mustDate(t, 2025, time.April, 1), decimal.NewFromInt(250000), nil,
	)
	require.NoError(t, err)

	require.NoError(t, service.DeleteOccupancy(context.Background(), occupancy.ID))

	var occupancies int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).
		Where("id = ?", occupancy.ID).
		Count(&occupancies).Error)
	assert.Zero(t, occupancies)

	var payments int64
	require.NoError(t, db.SQL.Model(&HousePayment{}).
		Where("occupant_history_id = ?", occupancy.ID).
		Count(&payments).Error)
	assert.Zero(t, payments)
}

// failingDeleteOccupancyRepo rejects the occupancy delete while delegating
// everything else to the real repository.
type failingDeleteOccupancyRepo struct {
	repositories.OccupantHistoryRepository
	deleteErr error
}

func (r failingDeleteOccupancyRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	return r.deleteErr
}

func TestOccupancyService_DeleteOccupancy_FailureLeavesBothIntact(t *testing.T) {
	db := setupSQLiteDB(t)
	repos := repositories.New()
	repos.OccupantHistory = failingDeleteOccupancyRepo{
		OccupantHistoryRepository: repos.OccupantHistory,
		deleteErr:                 errors.New("delete rejected"),
	}
	service := NewOccupancyService(repos, NewTransactionService(db))
	house, resident, _ := seedHouseAndResidents(t, db)

	occupancy := OccupantHistory{
		HouseID:    house.ID,
		ResidentID: resident.ID,
		StartDate:  mustDate(t, 2025, time.April, 1),
	}
	require.NoError(t, db.SQL.Create(&occupancy).Error)
	payments := []HousePayment{
		{
			OccupantHistoryID: occupancy.ID,
			PaymentDate:       mustDate(t, 2025, time.April, 1),
			PaymentAmount:     decimal.NewFromInt(250000),
		},
		{
			OccupantHistoryID: occupancy.ID,
			PaymentDate:       mustDate(t, 2025, time.May, 1),
			PaymentAmount:     decimal.NewFromInt(250000),
		},
	}
	require.NoError(t, db.SQL.Create(&payments).Error)

	err := service.DeleteOccupancy(context.Background(), occupancy.ID)
	require.Error(t, err)

	var occupancies int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).
		Where("id = ?", occupancy.ID).
		Count(&occupancies).Error)
	assert.EqualValues(t, 1, occupancies, "failed cascade must keep the occupancy")

	var remaining int64
	require.NoError(t, db.SQL.Model(&HousePayment{}).
		Where("occupant_history_id = ?", occupancy.ID).
		Count(&remaining).Error)
	assert.EqualValues(t, 2, remaining, "rollback must restore the deleted payments")
}

func TestOccupancyService_DeleteOccupancy_MissingID(t *testing.T) {
	_, service := setupOccupancyService(t)

	err := service.DeleteOccupancy(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOccupancyService_ResolveOrCreateActive_ReusesOpenOccupancy(t *testing.T) {
	db, service := setupOccupancyService(t)
	house, resident, _ := seedHouseAndResidents(t, db)

	ctx := context.Background()
	start := mustDate(t, 2025, time.January, 10)

	var firstID, secondID int
	err := service.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		first, err := service.ResolveOrCreateActive(ctx, tx, house.ID, resident.ID, start)
		if err != nil {
			return err
		}
		firstID = first.ID

		second, err := service.ResolveOrCreateActive(ctx, tx, house.ID, resident.ID, start)
		if err != nil {
			return err
		}
		secondID = second.ID
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	var count int64
	require.NoError(t, db.SQL.Model(&OccupantHistory{}).
		Where("house_id = ?", house.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
