package services

import (
	"context"
	"errors"
	"time"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidMonthCount = errors.New("month count must be at least 1")

// InstallmentService expands a payment request into month-spaced rows and
// persists them as one batch. Day-of-month clamping follows utils.AddMonths,
// so a series started on Jan 31 lands on Feb 28 rather than overflowing.
type InstallmentService struct {
	repos       repositories.Repository
	occupancy   *OccupancyService
	transaction *TransactionService
	log         logger.Logger
}

func NewInstallmentService(
	repos repositories.Repository,
	occupancy *OccupancyService,
	transaction *TransactionService,
) *InstallmentService {
	return &InstallmentService{
		repos:       repos,
		occupancy:   occupancy,
		transaction: transaction,
		log:         logger.New("InstallmentService"),
	}
}

// GenerateDuePayments records months consecutive dues for a resident starting
// at start. All rows insert in one transaction; partial success is impossible.
func (s *InstallmentService) GenerateDuePayments(
	ctx context.Context,
	residentID int,
	dueTypeID int,
	start time.Time,
	months int,
	description *string,
) ([]*DuePayment, error) {
	log := s.log.Function("GenerateDuePayments")

	if months < 1 {
		return nil, ErrInvalidMonthCount
	}

	start = utils.DateOnly(start)
	payments := make([]*DuePayment, 0, months)
	for i := 0; i < months; i++ {
		payments = append(payments, &DuePayment{
			ResidentID:  residentID,
			DueTypeID:   dueTypeID,
			Date:        utils.AddMonths(start, i),
			Description: description,
		})
	}

	err := s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return s.repos.DuePayment.CreateBatch(ctx, tx, payments)
	})
	if err != nil {
		return nil, log.Err("failed to generate due payments", err,
			"residentID", residentID, "months", months)
	}

	return payments, nil
}

// GenerateHousePayments records months consecutive installments against the
// open occupancy for (house, resident), creating the occupancy dated start
// when none exists. The fullyPaid flag maps to the stored payment status.
func (s *InstallmentService) GenerateHousePayments(
	ctx context.Context,
	houseID int,
	residentID int,
	start time.Time,
	amount decimal.Decimal,
	fullyPaid bool,
	months int,
	description *string,
) ([]*HousePayment, error) {
	log := s.log.Function("GenerateHousePayments")

	if months < 1 {
		return nil, ErrInvalidMonthCount
	}

	start = utils.DateOnly(start)
	status := PaymentStatusFromPaid(fullyPaid)

	var payments []*HousePayment
	err := s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		occupancy, err := s.occupancy.ResolveOrCreateActive(ctx, tx, houseID, residentID, start)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveOccupancy
			}
			return err
		}

		payments = make([]*HousePayment, 0, months)
		for i := 0; i < months; i++ {
			payments = append(payments, &HousePayment{
				OccupantHistoryID: occupancy.ID,
				PaymentDate:       utils.AddMonths(start, i),
				PaymentAmount:     amount,
				PaymentStatus:     status,
				Description:       description,
			})
		}

		return s.repos.HousePayment.CreateBatch(ctx, tx, payments)
	})
	if err != nil {
		if errors.Is(err, ErrNoActiveOccupancy) || errors.Is(err, ErrHouseOccupied) {
			return nil, err
		}
		return nil, log.Err("failed to generate house payments", err,
			"houseID", houseID, "months", months)
	}

	return payments, nil
}
