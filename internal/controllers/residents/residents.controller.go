package residentsController

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

type ResidentController struct {
	residentRepo repositories.ResidentRepository
	db           database.DB
	log          logger.Logger
}

type ResidentRequest struct {
	Name           string  `json:"name"`
	Photo          *string `json:"photo,omitempty"`
	MaritalStatus  string  `json:"maritalStatus"`
	OccupantStatus string  `json:"occupantStatus"`
	MobileNumber   *string `json:"mobileNumber,omitempty"`
}

type ResidentControllerInterface interface {
	GetAll(ctx context.Context) ([]*Resident, error)
	GetByID(ctx context.Context, id int) (*Resident, error)
	Create(ctx context.Context, request *ResidentRequest) (*Resident, error)
	Update(ctx context.Context, id int, request *ResidentRequest) (*Resident, error)
	Delete(ctx context.Context, id int) error
}

func New(repos repositories.Repository, db database.DB) ResidentControllerInterface {
	return &ResidentController{
		residentRepo: repos.Resident,
		db:           db,
		log:          logger.New("residentController"),
	}
}

func (r *ResidentRequest) validate() error {
	fields := apperr.FieldErrors{}
	if r.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if r.MaritalStatus != "" &&
		r.MaritalStatus != string(MaritalStatusMarried) &&
		r.MaritalStatus != string(MaritalStatusSingle) {
		fields.Add("maritalStatus", "The selected marital status is invalid.")
	}
	switch r.OccupantStatus {
	case "":
		fields.Add("occupantStatus", "The occupant status field is required.")
	case string(OccupantStatusPermanent), string(OccupantStatusContract):
	default:
		fields.Add("occupantStatus", "The selected occupant status is invalid.")
	}
	if fields.HasErrors() {
		return apperr.NewValidation(fields)
	}
	return nil
}

func (c *ResidentController) GetAll(ctx context.Context) ([]*Resident, error) {
	log := c.log.Function("GetAll")

	residents, err := c.residentRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get residents", err)
	}

	return residents, nil
}

func (c *ResidentController) GetByID(ctx context.Context, id int) (*Resident, error) {
	resident, err := c.residentRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return resident, nil
}

func (c *ResidentController) Create(
	ctx context.Context,
	request *ResidentRequest,
) (*Resident, error) {
	log := c.log.Function("Create")

	if err := request.validate(); err != nil {
		return nil, err
	}

	resident := &Resident{
		Name:           request.Name,
		Photo:          request.Photo,
		MaritalStatus:  MaritalStatus(request.MaritalStatus),
		OccupantStatus: OccupantStatus(request.OccupantStatus),
		MobileNumber:   request.MobileNumber,
	}
	if err := c.residentRepo.Create(ctx, c.db.SQL, resident); err != nil {
		return nil, log.Err("failed to create resident", err)
	}

	return resident, nil
}

func (c *ResidentController) Update(
	ctx context.Context,
	id int,
	request *ResidentRequest,
) (*Resident, error) {
	log := c.log.Function("Update")

	if err := request.validate(); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":            request.Name,
		"marital_status":  request.MaritalStatus,
		"occupant_status": request.OccupantStatus,
		"photo":           request.Photo,
		"mobile_number":   request.MobileNumber,
	}
	if err := c.residentRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update resident", err, "residentID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *ResidentController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.residentRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete resident", err, "residentID", id)
	}

	return nil
}
