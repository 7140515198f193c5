package handlers

import (
	"wisma/internal/app"
	housePaymentsController "wisma/internal/controllers/housepayments"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type HousePaymentHandler struct {
	Handler
	housePaymentController housePaymentsController.HousePaymentControllerInterface
}

func NewHousePaymentHandler(app app.App, router fiber.Router) *HousePaymentHandler {
	return &HousePaymentHandler{
		housePaymentController: app.Controllers.HousePayment,
		Handler: Handler{
			log:        logger.New("handlers").File("house_payment_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HousePaymentHandler) Register() {
	payments := h.router.Group("/house-payments")

	payments.Get("", h.getHousePayments)
	payments.Post("", h.createHousePayments)
	payments.Get("/:id", h.getHousePayment)
	payments.Put("/:id", h.updateHousePayment)
	payments.Delete("/:id", h.deleteHousePayment)
}

func (h *HousePaymentHandler) getHousePayments(c *fiber.Ctx) error {
	payments, err := h.housePaymentController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"housePayments": payments})
}

func (h *HousePaymentHandler) getHousePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	payment, err := h.housePaymentController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"housePayment": payment})
}

func (h *HousePaymentHandler) createHousePayments(c *fiber.Ctx) error {
	var req housePaymentsController.CreateHousePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	payments, err := h.housePaymentController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"housePayments": payments})
}

func (h *HousePaymentHandler) updateHousePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req housePaymentsController.UpdateHousePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	payment, err := h.housePaymentController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"housePayment": payment})
}

func (h *HousePaymentHandler) deleteHousePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.housePaymentController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
