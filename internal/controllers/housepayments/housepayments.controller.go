package housePaymentsController

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

type HousePaymentController struct {
	housePaymentRepo   repositories.HousePaymentRepository
	houseRepo          repositories.HouseRepository
	residentRepo       repositories.ResidentRepository
	installmentService *services.InstallmentService
	db                 database.DB
	log                logger.Logger
}

// CreateHousePaymentRequest expands into MonthCount installments bound to the
// open occupancy for (house, resident); one is created when none is open.
type CreateHousePaymentRequest struct {
	HouseID       int             `json:"houseId"`
	ResidentID    int             `json:"residentId"`
	PaymentDate   string          `json:"paymentDate"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	FullyPaid     bool            `json:"fullyPaid"`
	MonthCount    int             `json:"monthCount"`
	Description   *string         `json:"description,omitempty"`
}

type UpdateHousePaymentRequest struct {
	PaymentDate   string          `json:"paymentDate"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	FullyPaid     bool            `json:"fullyPaid"`
	Description   *string         `json:"description,omitempty"`
}

type HousePaymentControllerInterface interface {
	GetAll(ctx context.Context) ([]*HousePayment, error)
	GetByID(ctx context.Context, id int) (*HousePayment, error)
	Create(ctx context.Context, request *CreateHousePaymentRequest) ([]*HousePayment, error)
	Update(ctx context.Context, id int, request *UpdateHousePaymentRequest) (*HousePayment, error)
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) HousePaymentControllerInterface {
	return &HousePaymentController{
		housePaymentRepo:   repos.HousePayment,
		houseRepo:          repos.House,
		residentRepo:       repos.Resident,
		installmentService: services.Installment,
		db:                 db,
		log:                logger.New("housePaymentController"),
	}
}

func (c *HousePaymentController) GetAll(ctx context.Context) ([]*HousePayment, error) {
	log := c.log.Function("GetAll")

	payments, err := c.housePaymentRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to get house payments", err)
	}

	return payments, nil
}

func (c *HousePaymentController) GetByID(ctx context.Context, id int) (*HousePayment, error) {
	payment, err := c.housePaymentRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (c *HousePaymentController) Create(
	ctx context.Context,
	request *CreateHousePaymentRequest,
) ([]*HousePayment, error) {
	log := c.log.Function("Create")

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
	if request.PaymentDate == "" {
		fields.Add("paymentDate", "The payment date field is required.")
	} else if parsed, err := utils.ParseDate(request.PaymentDate); err != nil {
		fields.Add("paymentDate", "The payment date is not a valid date.")
	} else {
		date = parsed
	}

	if request.PaymentAmount.IsNegative() {
		fields.Add("paymentAmount", "The payment amount must be at least 0.")
	}
	if request.MonthCount < 1 {
		fields.Add("monthCount", "The month count must be at least 1.")
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	payments, err := c.installmentService.GenerateHousePayments(
		ctx,
		request.HouseID,
		request.ResidentID,
		date,
		request.PaymentAmount,
		request.FullyPaid,
		request.MonthCount,
		request.Description,
	)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveOccupancy) {
			return nil, err
		}
		return nil, log.Err("failed to create house payments", err)
	}

	return payments, nil
}

func (c *HousePaymentController) Update(
	ctx context.Context,
	id int,
	request *UpdateHousePaymentRequest,
) (*HousePayment, error) {
	log := c.log.Function("Update")

	fields := apperr.FieldErrors{}
	var date time.Time
	if request.PaymentDate == "" {
		fields.Add("paymentDate", "The payment date field is required.")
	} else if parsed, err := utils.ParseDate(request.PaymentDate); err != nil {
		fields.Add("paymentDate", "The payment date is not a valid date.")
	} else {
		date = parsed
	}
	if request.PaymentAmount.IsNegative() {
		fields.Add("paymentAmount", "The payment amount must be at least 0.")
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	updates := map[string]any{
		"payment_date":   date,
		"payment_amount": request.PaymentAmount,
		"payment_status": PaymentStatusFromPaid(request.FullyPaid),
		"description":    request.Description,
	}
	if err := c.housePaymentRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, log.Err("failed to update house payment", err, "paymentID", id)
	}

	return c.GetByID(ctx, id)
}

func (c *HousePaymentController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.housePaymentRepo.Delete(ctx, c.db.SQL, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return log.Err("failed to delete house payment", err, "paymentID", id)
	}

	return nil
}
