package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNoActiveOccupancy = errors.New("no active occupancy for house and resident")
	ErrNothingToEnd      = errors.New("house has no open occupancy to end")
	ErrHouseOccupied     = errors.New("house is occupied by another resident")
)

// OccupancyService enforces the one-open-occupancy-per-house rule. All writes
// that touch occupancies go through it so the invariant holds across the app.
type OccupancyService struct {
	repos       repositories.Repository
	transaction *TransactionService
	log         logger.Logger
}

func NewOccupancyService(
	repos repositories.Repository,
	transaction *TransactionService,
) *OccupancyService {
	return &OccupancyService{
		repos:       repos,
		transaction: transaction,
		log:         logger.New("OccupancyService"),
	}
}

// ResolveOrCreateActive returns the open occupancy for (house, resident),
// creating one dated fallbackStart when none exists. Returns ErrHouseOccupied
// when a different resident holds the house open. It runs inside the caller's
// transaction; the partial unique index on open occupancies backstops
// concurrent creates.
func (s *OccupancyService) ResolveOrCreateActive(
	ctx context.Context,
	tx *gorm.DB,
	houseID int,
	residentID int,
	fallbackStart time.Time,
) (*OccupantHistory, error) {
	log := s.log.Function("ResolveOrCreateActive")

	occupancy, err := s.repos.OccupantHistory.GetOpenByHouseAndResident(ctx, tx, houseID, residentID)
	if err == nil {
		return occupancy, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	_, err = s.repos.OccupantHistory.GetOpenByHouse(ctx, tx, houseID)
	if err == nil {
		return nil, ErrHouseOccupied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	occupancy = &OccupantHistory{
		HouseID:    houseID,
		ResidentID: residentID,
		StartDate:  utils.DateOnly(fallbackStart),
	}
	if err := s.repos.OccupantHistory.Create(ctx, tx, occupancy); err != nil {
		return nil, log.Err("failed to create occupancy", err, "houseID", houseID)
	}

	return occupancy, nil
}

// Assign moves a house to a new resident in one transaction: the current open
// occupancy (whoever holds it) is closed at the effective date, a new one is
// opened, and a single paid installment of the given amount is recorded.
func (s *OccupancyService) Assign(
	ctx context.Context,
	houseID int,
	residentID int,
	effectiveDate time.Time,
	amount decimal.Decimal,
	description *string,
) (*OccupantHistory, error) {
	log := s.log.Function("Assign")

	effectiveDate = utils.DateOnly(effectiveDate)

	var occupancy *OccupantHistory
	err := s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		prior, err := s.repos.OccupantHistory.GetOpenByHouse(ctx, tx, houseID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if prior != nil {
			if err := s.repos.OccupantHistory.SetEndDate(ctx, tx, prior.ID, effectiveDate); err != nil {
				return err
			}
		}

		occupancy = &OccupantHistory{
			HouseID:    houseID,
			ResidentID: residentID,
			StartDate:  effectiveDate,
		}
		if err := s.repos.OccupantHistory.Create(ctx, tx, occupancy); err != nil {
			return err
		}

		payment := &HousePayment{
			OccupantHistoryID: occupancy.ID,
			PaymentDate:       effectiveDate,
			PaymentAmount:     amount,
			PaymentStatus:     PaymentStatusPaid,
			Description:       description,
		}
		if err := s.repos.HousePayment.CreateBatch(ctx, tx, []*HousePayment{payment}); err != nil {
			return err
		}

		return s.audit(ctx, tx, AuditActionAssignHouse, occupancy.ID, map[string]any{
			"houseId":       houseID,
			"residentId":    residentID,
			"effectiveDate": utils.FormatDate(effectiveDate),
			"amount":        amount.String(),
		})
	})
	if err != nil {
		return nil, log.Err("failed to assign house", err, "houseID", houseID)
	}

	return occupancy, nil
}

// EndContract closes the open occupancy for a house at the effective date.
// Returns ErrNothingToEnd, mutating nothing, when the house has no open
// occupancy.
func (s *OccupancyService) EndContract(
	ctx context.Context,
	houseID int,
	effectiveDate time.Time,
) (*OccupantHistory, error) {
	log := s.log.Function("EndContract")

	effectiveDate = utils.DateOnly(effectiveDate)

	var occupancy *OccupantHistory
	err := s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		open, err := s.repos.OccupantHistory.GetOpenByHouse(ctx, tx, houseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNothingToEnd
		}
		if err != nil {
			return err
		}

		if err := s.repos.OccupantHistory.SetEndDate(ctx, tx, open.ID, effectiveDate); err != nil {
			return err
		}
		open.EndDate = &effectiveDate
		occupancy = open

		return s.audit(ctx, tx, AuditActionEndContract, open.ID, map[string]any{
			"houseId":       houseID,
			"residentId":    open.ResidentID,
			"effectiveDate": utils.FormatDate(effectiveDate),
		})
	})
	if err != nil {
		if errors.Is(err, ErrNothingToEnd) {
			return nil, err
		}
		return nil, log.Err("failed to end contract", err, "houseID", houseID)
	}

	return occupancy, nil
}

// DeleteOccupancy removes an occupancy and every installment recorded against
// it in one transaction.
func (s *OccupancyService) DeleteOccupancy(ctx context.Context, occupancyID int) error {
	log := s.log.Function("DeleteOccupancy")

	err := s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		occupancy, err := s.repos.OccupantHistory.GetByID(ctx, tx, occupancyID)
		if err != nil {
			return err
		}

		if err := s.repos.OccupantHistory.DeletePaymentsByOccupancy(ctx, tx, occupancyID); err != nil {
			return err
		}
		if err := s.repos.OccupantHistory.Delete(ctx, tx, occupancyID); err != nil {
			return err
		}

		return s.audit(ctx, tx, AuditActionDeleteRecord, occupancyID, map[string]any{
			"houseId":    occupancy.HouseID,
			"residentId": occupancy.ResidentID,
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return log.Err("failed to delete occupancy", err, "occupancyID", occupancyID)
	}

	return nil
}

func (s *OccupancyService) audit(
	ctx context.Context,
	tx *gorm.DB,
	action string,
	occupancyID int,
	detail map[string]any,
) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	return s.repos.Audit.Create(ctx, tx, &AuditLog{
		Action:   action,
		Entity:   "occupant_history",
		EntityID: occupancyID,
		Detail:   payload,
	})
}
