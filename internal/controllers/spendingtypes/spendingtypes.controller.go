package spendingTypesController

import (
	"context"
	"errors"
	"wisma/internal/apperr"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SpendingTypeController struct {
	spendingTypeRepo repositories.SpendingTypeRepository
	db               database.DB
	log              logger.Logger
}

type SpendingTypeRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type SpendingTypeControllerInterface interface {
	GetAll(ctx context.Context) ([]*SpendingType, error)
	GetByID(ctx context.Context, id int) (*SpendingType, error)
	Create(ctx context.Context, request *SpendingTypeRequest) (*SpendingType, error)
	Update(ctx context.Context, id int, request *SpendingTypeRequest) (*SpendingType, error)
	Delete(ctx context.Context, id int) error
}

func New(repos repositories.Repository, db database.DB) SpendingTypeControllerInterface {
	return &SpendingTypeController{
		spendingTypeRepo: repos.SpendingType,
		db:               db,
		log:              logger.New("spendingTypeController"),
	}
}

func (r *SpendingTypeRequest) validate() error {
	fields := apperr.FieldErrors{}
	if r.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if r.Amount.IsNegative() {
		fields.Add("amount", "The amount must be at least 0.")
	}
	if fields.HasErrors() {
		return apperr.NewValidation(fields)
	}
	return nil
}

func (c *SpendingTypeController) GetAll(ctx context.Context) ([]*SpendingType, error) {
	log := c.log.Function("GetAll")

	spendingTypes, err := c.spendingTypeRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get spending types", err)
	}

	return spendingTypes, nil
}

func (c *SpendingTypeController) GetByID(ctx context.Context, id int) (*SpendingType, error) {
	spendingType, err := c.spendingTypeRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return spendingType, nil
}

func (c *SpendingTypeController) Create(
	ctx context.Context,
	request *SpendingTypeRequest,
) (*SpendingType, error) {
	log := c.log.Function("Create")

	if err := request.validate(); err != nil {
		return nil, err
	}

	spendingType := &SpendingType{Name: request.Name, Amount: request.Amount}
	if err := c.spendingTypeRepo.Create(ctx, c.db.SQL, spendingType); err != nil {
		return nil, log.Err("failed to create spending type", err)
	}

	return spendingType, nil
}

func (c *SpendingTypeController) Update(
	ctx context.Context,
	id int,
	request *SpendingTypeRequest,
) (*SpendingType, error) {
	log := c.log.Function("Update")

	if err := request.validate(); err != nil {
		return nil, err
	}

	updates := map[string]any{"name": request.Name, "amount": request.Amount}
	if err := c.spendingTypeRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update spending type", err, "spendingTypeID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *SpendingTypeController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.spendingTypeRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete spending type", err, "spendingTypeID", id)
	}

	return nil
}
