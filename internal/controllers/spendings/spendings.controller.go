package spendingsController

import (
	"context"
	"errors"
	"time"
	"wisma/internal/apperr"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/utils"

	"gorm.io/gorm"
)

type SpendingController struct {
	spendingRepo     repositories.SpendingRepository
	spendingTypeRepo repositories.SpendingTypeRepository
	db               database.DB
	log              logger.Logger
}

type SpendingRequest struct {
	SpendingTypeID int     `json:"spendingTypeId"`
	Date           string  `json:"date"`
	Description    *string `json:"description,omitempty"`
}

type SpendingControllerInterface interface {
	GetAll(ctx context.Context) ([]*Spending, error)
	GetByID(ctx context.Context, id int) (*Spending, error)
	Create(ctx context.Context, request *SpendingRequest) (*Spending, error)
	Update(ctx context.Context, id int, request *SpendingRequest) (*Spending, error)
	Delete(ctx context.Context, id int) error
}

func New(repos repositories.Repository, db database.DB) SpendingControllerInterface {
	return &SpendingController{
		spendingRepo:     repos.Spending,
		spendingTypeRepo: repos.SpendingType,
		db:               db,
		log:              logger.New("spendingController"),
	}
}

func (c *SpendingController) validate(
	ctx context.Context,
	request *SpendingRequest,
) (time.Time, error) {
	fields := apperr.FieldErrors{}

	if request.SpendingTypeID == 0 {
		fields.Add("spendingTypeId", "The spending type id field is required.")
	} else if _, err := c.spendingTypeRepo.GetByID(ctx, c.db.SQL, request.SpendingTypeID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, err
		}
		fields.Add("spendingTypeId", "The selected spending type id is invalid.")
	}

	var date time.Time
	if request.Date == "" {
		fields.Add("date", "The date field is required.")
	} else {
		parsed, err := utils.ParseDate(request.Date)
		if err != nil {
			fields.Add("date", "The date is not a valid date.")
		} else {
			date = parsed
		}
	}

	if fields.HasErrors() {
		return time.Time{}, apperr.NewValidation(fields)
	}
	return date, nil
}

func (c *SpendingController) GetAll(ctx context.Context) ([]*Spending, error) {
	log := c.log.Function("GetAll")

	spendings, err := c.spendingRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get spendings", err)
	}

	return spendings, nil
}

func (c *SpendingController) GetByID(ctx context.Context, id int) (*Spending, error) {
	spending, err := c.spendingRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return spending, nil
}

func (c *SpendingController) Create(
	ctx context.Context,
	request *SpendingRequest,
) (*Spending, error) {
	log := c.log.Function("Create")

	date, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	spending := &Spending{
		SpendingTypeID: request.SpendingTypeID,
		Date:           date,
		Description:    request.Description,
	}
	if err := c.spendingRepo.Create(ctx, c.db.SQL, spending); err != nil {
		return nil, log.Err("failed to create spending", err)
	}

	return spending, nil
}

func (c *SpendingController) Update(
	ctx context.Context,
	id int,
	request *SpendingRequest,
) (*Spending, error) {
	log := c.log.Function("Update")

	date, err := c.validate(ctx, request)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"spending_type_id": request.SpendingTypeID,
		"date":             date,
		"description":      request.Description,
	}
	if err := c.spendingRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update spending", err, "spendingID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *SpendingController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.spendingRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete spending", err, "spendingID", id)
	}

	return nil
}
