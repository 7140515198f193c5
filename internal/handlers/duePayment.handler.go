package handlers

import (
	"wisma/internal/app"
	duePaymentsController "wisma/internal/controllers/duepayments"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DuePaymentHandler struct {
	Handler
	duePaymentController duePaymentsController.DuePaymentControllerInterface
}

func NewDuePaymentHandler(app app.App, router fiber.Router) *DuePaymentHandler {
	return &DuePaymentHandler{
		duePaymentController: app.Controllers.DuePayment,
		Handler: Handler{
			log:        logger.New("handlers").File("due_payment_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DuePaymentHandler) Register() {
	payments := h.router.Group("/due-payments")

	payments.Get("", h.getDuePayments)
	payments.Post("", h.createDuePayments)
	payments.Get("/:id", h.getDuePayment)
	payments.Put("/:id", h.updateDuePayment)
	payments.Delete("/:id", h.deleteDuePayment)
}

func (h *DuePaymentHandler) getDuePayments(c *fiber.Ctx) error {
	payments, err := h.duePaymentController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"duePayments": payments})
}

func (h *DuePaymentHandler) getDuePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	payment, err := h.duePaymentController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"duePayment": payment})
}

func (h *DuePaymentHandler) createDuePayments(c *fiber.Ctx) error {
	var req duePaymentsController.CreateDuePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	payments, err := h.duePaymentController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"duePayments": payments})
}

func (h *DuePaymentHandler) updateDuePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req duePaymentsController.UpdateDuePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	payment, err := h.duePaymentController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"duePayment": payment})
}

func (h *DuePaymentHandler) deleteDuePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.duePaymentController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
