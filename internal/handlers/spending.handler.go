package handlers

import (
	"wisma/internal/app"
	spendingsController "wisma/internal/controllers/spendings"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type SpendingHandler struct {
	Handler
	spendingController spendingsController.SpendingControllerInterface
}

func NewSpendingHandler(app app.App, router fiber.Router) *SpendingHandler {
	return &SpendingHandler{
		spendingController: app.Controllers.Spending,
		Handler: Handler{
			log:        logger.New("handlers").File("spending_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SpendingHandler) Register() {
	spendings := h.router.Group("/spendings")

	spendings.Get("", h.getSpendings)
	spendings.Post("", h.createSpending)
	spendings.Get("/:id", h.getSpending)
	spendings.Put("/:id", h.updateSpending)
	spendings.Delete("/:id", h.deleteSpending)
}

func (h *SpendingHandler) getSpendings(c *fiber.Ctx) error {
	spendings, err := h.spendingController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"spendings": spendings})
}

func (h *SpendingHandler) getSpending(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	spending, err := h.spendingController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"spending": spending})
}

func (h *SpendingHandler) createSpending(c *fiber.Ctx) error {
	var req spendingsController.SpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	spending, err := h.spendingController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"spending": spending})
}

func (h *SpendingHandler) updateSpending(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req spendingsController.SpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	spending, err := h.spendingController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"spending": spending})
}

func (h *SpendingHandler) deleteSpending(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.spendingController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
