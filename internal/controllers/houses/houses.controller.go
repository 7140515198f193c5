package housesController

import (
	"context"
	"errors"
	"wisma/internal/apperr"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"

	"gorm.io/gorm"
)

type HouseController struct {
	houseRepo repositories.HouseRepository
	db        database.DB
	log       logger.Logger
}

type HouseRequest struct {
	Number string `json:"number"`
	Status string `json:"status,omitempty"`
}

type HouseControllerInterface interface {
	GetAll(ctx context.Context) ([]*repositories.HouseWithOccupant, error)
	GetByID(ctx context.Context, id int) (*House, error)
	Create(ctx context.Context, request *HouseRequest) (*House, error)
	Update(ctx context.Context, id int, request *HouseRequest) (*House, error)
	Delete(ctx context.Context, id int) error
}

func New(repos repositories.Repository, db database.DB) HouseControllerInterface {
	return &HouseController{
		houseRepo: repos.House,
		db:        db,
		log:       logger.New("houseController"),
	}
}

func (r *HouseRequest) validate() error {
	fields := apperr.FieldErrors{}
	if r.Number == "" {
		fields.Add("number", "The number field is required.")
	}
	if r.Status != "" &&
		r.Status != string(HouseStatusActive) &&
		r.Status != string(HouseStatusInactive) {
		fields.Add("status", "The selected status is invalid.")
	}
	if fields.HasErrors() {
		return apperr.NewValidation(fields)
	}
	return nil
}

func (c *HouseController) GetAll(ctx context.Context) ([]*repositories.HouseWithOccupant, error) {
	log := c.log.Function("GetAll")

	houses, err := c.houseRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get houses", err)
	}

	return houses, nil
}

func (c *HouseController) GetByID(ctx context.Context, id int) (*House, error) {
	house, err := c.houseRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return house, nil
}

func (c *HouseController) Create(ctx context.Context, request *HouseRequest) (*House, error) {
	log := c.log.Function("Create")

	if err := request.validate(); err != nil {
		return nil, err
	}

	house := &House{
		Number: request.Number,
		Status: HouseStatus(request.Status),
	}
	if err := c.houseRepo.Create(ctx, c.db.SQL, house); err != nil {
		return nil, log.Err("failed to create house", err)
	}

	return house, nil
}

func (c *HouseController) Update(
	ctx context.Context,
	id int,
	request *HouseRequest,
) (*House, error) {
	log := c.log.Function("Update")

	if err := request.validate(); err != nil {
		return nil, err
	}

	house := &House{
		Number: request.Number,
		Status: HouseStatus(request.Status),
	}
	if err := c.houseRepo.Update(ctx, c.db.SQL, id, house); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update house", err, "houseID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *HouseController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.houseRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete house", err, "houseID", id)
	}

	return nil
}
