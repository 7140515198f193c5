package statsController

import (
	"context"
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

func setupStatsController(t *testing.T) (database.DB, StatsControllerInterface) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	return db, New(repositories.New(), db)
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

// seedFinances loads a small ledger: one paid and one unpaid house payment,
// two due payments, one spending.
func seedFinances(t *testing.T, db database.DB) {
	house := House{Number: "A-01"}
	require.NoError(t, db.SQL.Create(&house).Error)
	resident := Resident{Name: "Budi", OccupantStatus: OccupantStatusPermanent}
	require.NoError(t, db.SQL.Create(&resident).Error)

	occupancy := OccupantHistory{
		HouseID:    house.ID,
		ResidentID: resident.ID,
		StartDate:  date(t, "2025-01-01"),
	}
	require.NoError(t, db.SQL.Create(&occupancy).Error)

	payments := []HousePayment{
		{
			OccupantHistoryID: occupancy.ID,
			PaymentDate:       date(t, "2025-01-15"),
			PaymentAmount:     decimal.NewFromInt(500000),
			PaymentStatus:     PaymentStatusPaid,
		},
		{
			OccupantHistoryID: occupancy.ID,
			PaymentDate:       date(t, "2025-02-10"),
			PaymentAmount:     decimal.NewFromInt(450000),
			PaymentStatus:     PaymentStatusUnpaid,
		},
	}
	require.NoError(t, db.SQL.Create(&payments).Error)

	dueType := DueType{Name: "Iuran Keamanan", Amount: decimal.NewFromInt(50000)}
	require.NoError(t, db.SQL.Create(&dueType).Error)

	dues := []DuePayment{
		{DueTypeID: dueType.ID, ResidentID: resident.ID, Date: date(t, "2025-01-20")},
		{DueTypeID: dueType.ID, ResidentID: resident.ID, Date: date(t, "2025-03-05")},
	}
	require.NoError(t, db.SQL.Create(&dues).Error)

	spendingType := SpendingType{Name: "Gaji Satpam", Amount: decimal.NewFromInt(200000)}
	require.NoError(t, db.SQL.Create(&spendingType).Error)

	spending := Spending{SpendingTypeID: spendingType.ID, Date: date(t, "2025-02-01")}
	require.NoError(t, db.SQL.Create(&spending).Error)
}

func TestStatsController_Dashboard_ExcludesUnpaidHousePayments(t *testing.T) {
	db, controller := setupStatsController(t)
	seedFinances(t, db)

	dashboard, err := controller.Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(600000).Equal(dashboard.TotalEarning),
		"got %s", dashboard.TotalEarning)
	assert.True(t, decimal.NewFromInt(200000).Equal(dashboard.TotalSpending),
		"got %s", dashboard.TotalSpending)
	assert.True(t, decimal.NewFromInt(400000).Equal(dashboard.Saldo),
		"got %s", dashboard.Saldo)
}

func TestStatsController_Dashboard_EmptyLedger(t *testing.T) {
	_, controller := setupStatsController(t)

	dashboard, err := controller.Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, dashboard.TotalEarning.IsZero())
	assert.True(t, dashboard.TotalSpending.IsZero())
	assert.True(t, dashboard.Saldo.IsZero())
}

func TestStatsController_MonthlySeries_TwelveZeroFilledBuckets(t *testing.T) {
	db, controller := setupStatsController(t)
	seedFinances(t, db)

	series, err := controller.MonthlySeries(context.Background(), 2025, 2)
	require.NoError(t, err)

	require.Len(t, series.Earnings, 12)
	require.Len(t, series.Spendings, 12)

	assert.True(t, decimal.NewFromInt(550000).Equal(series.Earnings[0]),
		"january: %s", series.Earnings[0])
	assert.True(t, series.Earnings[1].IsZero(), "february holds only an unpaid payment")
	assert.True(t, decimal.NewFromInt(50000).Equal(series.Earnings[2]),
		"march: %s", series.Earnings[2])

	assert.True(t, decimal.NewFromInt(200000).Equal(series.Spendings[1]),
		"february spending: %s", series.Spendings[1])

	for month := 3; month < 12; month++ {
		assert.True(t, series.Earnings[month].IsZero(), "month %d", month+1)
		assert.True(t, series.Spendings[month].IsZero(), "month %d", month+1)
	}
}

func TestStatsController_MonthlySeries_PointTotals(t *testing.T) {
	db, controller := setupStatsController(t)
	seedFinances(t, db)

	series, err := controller.MonthlySeries(context.Background(), 2025, 2)
	require.NoError(t, err)

	assert.Equal(t, 2025, series.Year)
	assert.Equal(t, 2, series.Month)
	assert.True(t, decimal.NewFromInt(600000).Equal(series.TotalEarning),
		"got %s", series.TotalEarning)
	assert.True(t, decimal.NewFromInt(200000).Equal(series.MonthlySpending),
		"february spending: %s", series.MonthlySpending)
	assert.True(t, decimal.NewFromInt(400000).Equal(series.Saldo),
		"got %s", series.Saldo)

	january, err := controller.MonthlySeries(context.Background(), 2025, 1)
	require.NoError(t, err)
	assert.True(t, january.MonthlySpending.IsZero(), "no spending recorded in january")
	assert.True(t, decimal.NewFromInt(600000).Equal(january.TotalEarning),
		"lifetime total must not shift with the month")
}

func TestStatsController_MonthlySeries_OtherYearIsEmpty(t *testing.T) {
	db, controller := setupStatsController(t)
	seedFinances(t, db)

	series, err := controller.MonthlySeries(context.Background(), 2024, 1)
	require.NoError(t, err)

	require.Len(t, series.Earnings, 12)
	for i := range series.Earnings {
		assert.True(t, series.Earnings[i].IsZero())
		assert.True(t, series.Spendings[i].IsZero())
	}
	assert.True(t, series.MonthlySpending.IsZero())
}

func TestStatsController_EarningReport_ListsUnpaidButExcludesFromTotal(t *testing.T) {
	db, controller := setupStatsController(t)
	seedFinances(t, db)

	report, err := controller.EarningReport(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, report.Items, 4)
	assert.True(t, decimal.NewFromInt(600000).Equal(report.Total), "got %s", report.Total)

	dates := make([]string, 0, len(report.Items))
	for _, item := range report.Items {
		dates = append(dates, item.Date)
	}
	assert.Equal(t, []string{"2025-03-05", "2025-02-10", "2025-01-20", "2025-01-15"}, dates)

	unpaid := report.Items[1]
	assert.Equal(t, LabelHousePayment, unpaid.PaymentType)
	assert.Equal(t, PaymentStatusUnpaid, unpaid.Status)
	assert.Equal(t, "Budi", unpaid.ResidentName)
}

func TestStatsController_EarningReport_PeriodBounds(t *testing.T) {
	db, controller := setupStatsController(t)
	seedFinances(t, db)

	start := date(t, "2025-01-01")
	end := date(t, "2025-01-31")

	report, err := controller.EarningReport(context.Background(), &start, &end)
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	assert.True(t, decimal.NewFromInt(550000).Equal(report.Total), "got %s", report.Total)
	for _, item := range report.Items {
		assert.Contains(t, item.Date, "2025-01")
	}
}
