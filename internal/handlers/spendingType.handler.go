package handlers

import (
	"wisma/internal/app"
	spendingTypesController "wisma/internal/controllers/spendingtypes"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type SpendingTypeHandler struct {
	Handler
	spendingTypeController spendingTypesController.SpendingTypeControllerInterface
}

func NewSpendingTypeHandler(app app.App, router fiber.Router) *SpendingTypeHandler {
	return &SpendingTypeHandler{
		spendingTypeController: app.Controllers.SpendingType,
		Handler: Handler{
			log:        logger.New("handlers").File("spending_type_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SpendingTypeHandler) Register() {
	spendingTypes := h.router.Group("/spending-types")

	spendingTypes.Get("", h.getSpendingTypes)
	spendingTypes.Post("", h.createSpendingType)
	spendingTypes.Get("/:id", h.getSpendingType)
	spendingTypes.Put("/:id", h.updateSpendingType)
	spendingTypes.Delete("/:id", h.deleteSpendingType)
}

func (h *SpendingTypeHandler) getSpendingTypes(c *fiber.Ctx) error {
	spendingTypes, err := h.spendingTypeController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"spendingTypes": spendingTypes})
}

func (h *SpendingTypeHandler) getSpendingType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	spendingType, err := h.spendingTypeController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"spendingType": spendingType})
}

func (h *SpendingTypeHandler) createSpendingType(c *fiber.Ctx) error {
	var req spendingTypesController.SpendingTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	spendingType, err := h.spendingTypeController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"spendingType": spendingType})
}

func (h *SpendingTypeHandler) updateSpendingType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req spendingTypesController.SpendingTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	spendingType, err := h.spendingTypeController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"spendingType": spendingType})
}

func (h *SpendingTypeHandler) deleteSpendingType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.spendingTypeController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
