package duePaymentsController

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

	"gorm.io/gorm"
)

type DuePaymentController struct {
	duePaymentRepo     repositories.DuePaymentRepository
	dueTypeRepo        repositories.DueTypeRepository
	residentRepo       repositories.ResidentRepository
	installmentService *services.InstallmentService
	db                 database.DB
	log                logger.Logger
}

// CreateDuePaymentRequest covers a span of months: MonthCount rows are
// generated, one month apart starting at Date.
type CreateDuePaymentRequest struct {
	DueTypeID   int     `json:"dueTypeId"`
	ResidentID  int     `json:"residentId"`
	Date        string  `json:"date"`
	MonthCount  int     `json:"monthCount"`
	Description *string `json:"description,omitempty"`
}

type UpdateDuePaymentRequest struct {
	DueTypeID   int     `json:"dueTypeId"`
	ResidentID  int     `json:"residentId"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

type DuePaymentControllerInterface interface {
	GetAll(ctx context.Context) ([]*DuePayment, error)
	GetByID(ctx context.Context, id int) (*DuePayment, error)
	Create(ctx context.Context, request *CreateDuePaymentRequest) ([]*DuePayment, error)
	Update(ctx context.Context, id int, request *UpdateDuePaymentRequest) (*DuePayment, error)
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) DuePaymentControllerInterface {
	return &DuePaymentController{
		duePaymentRepo:     repos.DuePayment,
		dueTypeRepo:        repos.DueType,
		residentRepo:       repos.Resident,
		installmentService: services.Installment,
		db:                 db,
		log:                logger.New("duePaymentController"),
	}
}

func (c *DuePaymentController) validateRefs(
	ctx context.Context,
	fields apperr.FieldErrors,
	dueTypeID int,
	residentID int,
) error {
	if dueTypeID == 0 {
		fields.Add("dueTypeId", "The due type id field is required.")
	} else if _, err := c.dueTypeRepo.GetByID(ctx, c.db.SQL, dueTypeID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		fields.Add("dueTypeId", "The selected due type id is invalid.")
	}

	if residentID == 0 {
		fields.Add("residentId", "The resident id field is required.")
	} else if _, err := c.residentRepo.GetByID(ctx, c.db.SQL, residentID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		fields.Add("residentId", "The selected resident id is invalid.")
	}

	return nil
}

func parseRequiredDate(fields apperr.FieldErrors, raw string) time.Time {
	if raw == "" {
		fields.Add("date", "The date field is required.")
		return time.Time{}
	}
	date, err := utils.ParseDate(raw)
	if err != nil {
		fields.Add("date", "The date is not a valid date.")
		return time.Time{}
	}
	return date
}

func (c *DuePaymentController) GetAll(ctx context.Context) ([]*DuePayment, error) {
	log := c.log.Function("GetAll")

	payments, err := c.duePaymentRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get due payments", err)
	}

	return payments, nil
}

func (c *DuePaymentController) GetByID(ctx context.Context, id int) (*DuePayment, error) {
	payment, err := c.duePaymentRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (c *DuePaymentController) Create(
	ctx context.Context,
	request *CreateDuePaymentRequest,
) ([]*DuePayment, error) {
	log := c.log.Function("Create")

	fields := apperr.FieldErrors{}
	if err := c.validateRefs(ctx, fields, request.DueTypeID, request.ResidentID); err != nil {
		return nil, err
	}
	date := parseRequiredDate(fields, request.Date)
	if request.MonthCount < 1 {
		fields.Add("monthCount", "The month count must be at least 1.")
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	payments, err := c.installmentService.GenerateDuePayments(
		ctx,
		request.ResidentID,
		request.DueTypeID,
		date,
		request.MonthCount,
		request.Description,
	)
	if err != nil {
		return nil, log.Err("failed to create due payments", err)
	}

	return payments, nil
}

func (c *DuePaymentController) Update(
	ctx context.Context,
	id int,
	request *UpdateDuePaymentRequest,
) (*DuePayment, error) {
	log := c.log.Function("Update")

	fields := apperr.FieldErrors{}
	if err := c.validateRefs(ctx, fields, request.DueTypeID, request.ResidentID); err != nil {
		return nil, err
	}
	date := parseRequiredDate(fields, request.Date)
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	updates := map[string]any{
		"due_type_id": request.DueTypeID,
		"resident_id": request.ResidentID,
		"date":        date,
		"description": request.Description,
	}
	if err := c.duePaymentRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update due payment", err, "paymentID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *DuePaymentController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.duePaymentRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete due payment", err, "paymentID", id)
	}

	return nil
}
