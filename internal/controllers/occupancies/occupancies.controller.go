package occupanciesController

import (
	"context"
	"errors"
	"time"
	"wisma/internal/apperr"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/services"
	"wisma/internal/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OccupancyController struct {
	occupancyRepo    repositories.OccupantHistoryRepository
	houseRepo        repositories.HouseRepository
	residentRepo     repositories.ResidentRepository
	occupancyService *services.OccupancyService
	db               database.DB
	log              logger.Logger
}

type AssignRequest struct {
	HouseID       int             `json:"houseId"`
	ResidentID    int             `json:"residentId"`
	EffectiveDate string          `json:"effectiveDate"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	Description   *string         `json:"description,omitempty"`
}

type EndContractRequest struct {
	HouseID       int    `json:"houseId"`
	EffectiveDate string `json:"effectiveDate"`
}

// UpdateDatesRequest corrects a recorded occupancy span. EndDate empty means
// the occupancy is (still) open.
type UpdateDatesRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

type OccupancyControllerInterface interface {
	GetByHouse(ctx context.Context, houseID int) ([]*OccupantHistory, error)
	GetByID(ctx context.Context, id int) (*OccupantHistory, error)
	Assign(ctx context.Context, request *AssignRequest) (*OccupantHistory, error)
	EndContract(ctx context.Context, request *EndContractRequest) (*OccupantHistory, error)
	UpdateDates(ctx context.Context, id int, request *UpdateDatesRequest) (*OccupantHistory, error)
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) OccupancyControllerInterface {
	return &OccupancyController{
		occupancyRepo:    repos.OccupantHistory,
		houseRepo:        repos.House,
		residentRepo:     repos.Resident,
		occupancyService: services.Occupancy,
		db:               db,
		log:              logger.New("occupancyController"),
	}
}

func (c *OccupancyController) GetByHouse(
	ctx context.Context,
	houseID int,
) ([]*OccupantHistory, error) {
	log := c.log.Function("GetByHouse")

	if _, err := c.houseRepo.GetByID(ctx, c.db.SQL, houseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	histories, err := c.occupancyRepo.GetByHouse(ctx, c.db.SQL, houseID)
	if err != nil {
		return nil, log.Err("failed to get occupancies", err, "houseID", houseID)
	}

	return histories, nil
}

func (c *OccupancyController) GetByID(ctx context.Context, id int) (*OccupantHistory, error) {
	occupancy, err := c.occupancyRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return occupancy, nil
}

func (c *OccupancyController) Assign(
	ctx context.Context,
	request *AssignRequest,
) (*OccupantHistory, error) {
	log := c.log.Function("Assign")

	fields := apperr.FieldErrors{}

	if request.HouseID == 0 {
		fields.Add("houseId", "The house id field is required.")
	} else if _, err := c.houseRepo.GetByID(ctx, c.db.SQL, request.HouseID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fields.Add("houseId", "The selected house id is invalid.")
	}

	if request.ResidentID == 0 {
		fields.Add("residentId", "The resident id field is required.")
	} else if _, err := c.residentRepo.GetByID(ctx, c.db.SQL, request.ResidentID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fields.Add("residentId", "The selected resident id is invalid.")
	}

	var date time.Time
	if request.EffectiveDate == "" {
		fields.Add("effectiveDate", "The effective date field is required.")
	} else if parsed, err := utils.ParseDate(request.EffectiveDate); err != nil {
		fields.Add("effectiveDate", "The effective date is not a valid date.")
	} else {
		date = parsed
	}

	if request.PaymentAmount.IsNegative() {
		fields.Add("paymentAmount", "The payment amount must be at least 0.")
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	occupancy, err := c.occupancyService.Assign(
		ctx,
		request.HouseID,
		request.ResidentID,
		date,
		request.PaymentAmount,
		request.Description,
	)
	if err != nil {
		return nil, log.Err("failed to assign house", err, "houseID", request.HouseID)
	}

	return occupancy, nil
}

func (c *OccupancyController) EndContract(
	ctx context.Context,
	request *EndContractRequest,
) (*OccupantHistory, error) {
	log := c.log.Function("EndContract")

	fields := apperr.FieldErrors{}
	if request.HouseID == 0 {
		fields.Add("houseId", "The house id field is required.")
	}
	var date time.Time
	if request.EffectiveDate == "" {
		fields.Add("effectiveDate", "The effective date field is required.")
	} else if parsed, err := utils.ParseDate(request.EffectiveDate); err != nil {
		fields.Add("effectiveDate", "The effective date is not a valid date.")
	} else {
		date = parsed
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	occupancy, err := c.occupancyService.EndContract(ctx, request.HouseID, date)
	if err != nil {
		if errors.Is(err, services.ErrNothingToEnd) {
			return nil, err
		}
		return nil, log.Err("failed to end contract", err, "houseID", request.HouseID)
	}

	return occupancy, nil
}

func (c *OccupancyController) UpdateDates(
	ctx context.Context,
	id int,
	request *UpdateDatesRequest,
) (*OccupantHistory, error) {
	log := c.log.Function("UpdateDates")

	fields := apperr.FieldErrors{}
	var startDate time.Time
	if request.StartDate == "" {
		fields.Add("startDate", "The start date field is required.")
	} else if parsed, err := utils.ParseDate(request.StartDate); err != nil {
		fields.Add("startDate", "The start date is not a valid date.")
	} else {
		startDate = parsed
	}

	var endDate *time.Time
	if request.EndDate != "" {
		parsed, err := utils.ParseDate(request.EndDate)
		if err != nil {
			fields.Add("endDate", "The end date is not a valid date.")
		} else if !startDate.IsZero() && parsed.Before(startDate) {
			fields.Add("endDate", "The end date must be on or after the start date.")
		} else {
			endDate = &parsed
		}
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	if err := c.occupancyRepo.UpdateDates(ctx, c.db.SQL, id, startDate, endDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update occupancy dates", err, "occupancyID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *OccupancyController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.occupancyService.DeleteOccupancy(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete occupancy", err, "occupancyID", id)
	}

	return nil
}
