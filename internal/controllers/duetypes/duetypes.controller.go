package dueTypesController

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

type DueTypeController struct {
	dueTypeRepo repositories.DueTypeRepository
	db          database.DB
	log         logger.Logger
}

type DueTypeRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type DueTypeControllerInterface interface {
	GetAll(ctx context.Context) ([]*DueType, error)
	GetByID(ctx context.Context, id int) (*DueType, error)
	Create(ctx context.Context, request *DueTypeRequest) (*DueType, error)
	Update(ctx context.Context, id int, request *DueTypeRequest) (*DueType, error)
	Delete(ctx context.Context, id int) error
}

func New(repos repositories.Repository, db database.DB) DueTypeControllerInterface {
	return &DueTypeController{
		dueTypeRepo: repos.DueType,
		db:          db,
		log:         logger.New("dueTypeController"),
	}
}

func (r *DueTypeRequest) validate() error {
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

func (c *DueTypeController) GetAll(ctx context.Context) ([]*DueType, error) {
	log := c.log.Function("GetAll")

	dueTypes, err := c.dueTypeRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get due types", err)
	}

	return dueTypes, nil
}

func (c *DueTypeController) GetByID(ctx context.Context, id int) (*DueType, error) {
	dueType, err := c.dueTypeRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return dueType, nil
}

func (c *DueTypeController) Create(
	ctx context.Context,
	request *DueTypeRequest,
) (*DueType, error) {
	log := c.log.Function("Create")

	if err := request.validate(); err != nil {
		return nil, err
	}

	dueType := &DueType{Name: request.Name, Amount: request.Amount}
	if err := c.dueTypeRepo.Create(ctx, c.db.SQL, dueType); err != nil {
		return nil, log.Err("failed to create due type", err)
	}

	return dueType, nil
}

func (c *DueTypeController) Update(
	ctx context.Context,
	id int,
	request *DueTypeRequest,
) (*DueType, error) {
	log := c.log.Function("Update")

	if err := request.validate(); err != nil {
		return nil, err
	}

	updates := map[string]any{"name": request.Name, "amount": request.Amount}
	if err := c.dueTypeRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update due type", err, "dueTypeID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *DueTypeController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.dueTypeRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete due type", err, "dueTypeID", id)
	}

	return nil
}
