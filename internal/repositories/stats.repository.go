package repositories

import (
	"context"
	"time"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Period is a half-open [Start, End) date filter. A nil bound is unbounded.
type Period struct {
	Start *time.Time
	End   *time.Time
}

// DatedAmount is a single money movement on a date, used for aggregation.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
	Status PaymentStatus
}

// ReportItem is one row of the itemized earnings report.
type ReportItem struct {
	Date         time.Time
	Amount       decimal.Decimal
	Status       PaymentStatus
	ResidentName string
	Description  *string
}

type StatsRepository interface {
	HousePaymentAmounts(ctx context.Context, tx *gorm.DB, period Period) ([]DatedAmount, error)
	DuePaymentAmounts(ctx context.Context, tx *gorm.DB, period Period) ([]DatedAmount, error)
	SpendingAmounts(ctx context.Context, tx *gorm.DB, period Period) ([]DatedAmount, error)
	HousePaymentItems(ctx context.Context, tx *gorm.DB, period Period) ([]ReportItem, error)
	DuePaymentItems(ctx context.Context, tx *gorm.DB, period Period) ([]ReportItem, error)
}

type statsRepository struct{}

func NewStatsRepository() StatsRepository {
	return &statsRepository{}
}

func applyPeriod(tx *gorm.DB, column string, period Period) *gorm.DB {
	if period.Start != nil {
		tx = tx.Where(column+" >= ?", *period.Start)
	}
	if period.End != nil {
		tx = tx.Where(column+" < ?", *period.End)
	}
	return tx
}

func (r *statsRepository) HousePaymentAmounts(
	ctx context.Context,
	tx *gorm.DB,
	period Period,
) ([]DatedAmount, error) {
	log := logger.NewWithContext(ctx, "statsRepository").Function("HousePaymentAmounts")

	var rows []DatedAmount
	query := tx.WithContext(ctx).
		Model(&HousePayment{}).
		Select("house_payments.payment_date AS date, house_payments.payment_amount AS amount, house_payments.payment_status AS status")
	query = applyPeriod(query, "house_payments.payment_date", period)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to get house payment amounts", err)
	}

	return rows, nil
}

func (r *statsRepository) DuePaymentAmounts(
	ctx context.Context,
	tx *gorm.DB,
	period Period,
) ([]DatedAmount, error) {
	log := logger.NewWithContext(ctx, "statsRepository").Function("DuePaymentAmounts")

	var rows []DatedAmount
	query := tx.WithContext(ctx).
		Model(&DuePayment{}).
		Select("due_payments.date AS date, due_types.amount AS amount").
		Joins("JOIN due_types ON due_types.id = due_payments.due_type_id")
	query = applyPeriod(query, "due_payments.date", period)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to get due payment amounts", err)
	}

	return rows, nil
}

func (r *statsRepository) SpendingAmounts(
	ctx context.Context,
	tx *gorm.DB,
	period Period,
) ([]DatedAmount, error) {
	log := logger.NewWithContext(ctx, "statsRepository").Function("SpendingAmounts")

	var rows []DatedAmount
	query := tx.WithContext(ctx).
		Model(&Spending{}).
		Select("spendings.date AS date, spending_types.amount AS amount").
		Joins("JOIN spending_types ON spending_types.id = spendings.spending_type_id")
	query = applyPeriod(query, "spendings.date", period)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to get spending amounts", err)
	}

	return rows, nil
}

func (r *statsRepository) HousePaymentItems(
	ctx context.Context,
	tx *gorm.DB,
	period Period,
) ([]ReportItem, error) {
	log := logger.NewWithContext(ctx, "statsRepository").Function("HousePaymentItems")

	var rows []ReportItem
	query := tx.WithContext(ctx).
		Model(&HousePayment{}).
		Select("house_payments.payment_date AS date, house_payments.payment_amount AS amount, house_payments.payment_status AS status, house_payments.description AS description, residents.name AS resident_name").
		Joins("JOIN occupant_histories ON occupant_histories.id = house_payments.occupant_history_id").
		Joins("JOIN residents ON residents.id = occupant_histories.resident_id")
	query = applyPeriod(query, "house_payments.payment_date", period)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to get house payment items", err)
	}

	return rows, nil
}

func (r *statsRepository) DuePaymentItems(
	ctx context.Context,
	tx *gorm.DB,
	period Period,
) ([]ReportItem, error) {
	log := logger.NewWithContext(ctx, "statsRepository").Function("DuePaymentItems")

	var rows []ReportItem
	query := tx.WithContext(ctx).
		Model(&DuePayment{}).
		Select("due_payments.date AS date, due_types.amount AS amount, due_payments.description AS description, residents.name AS resident_name").
		Joins("JOIN due_types ON due_types.id = due_payments.due_type_id").
		Joins("JOIN residents ON residents.id = due_payments.resident_id")
	query = applyPeriod(query, "due_payments.date", period)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to get due payment items", err)
	}

	return rows, nil
}
