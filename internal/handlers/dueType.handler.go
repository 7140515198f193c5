package handlers

import (
	"wisma/internal/app"
	dueTypesController "wisma/internal/controllers/duetypes"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DueTypeHandler struct {
	Handler
	dueTypeController dueTypesController.DueTypeControllerInterface
}

func NewDueTypeHandler(app app.App, router fiber.Router) *DueTypeHandler {
	return &DueTypeHandler{
		dueTypeController: app.Controllers.DueType,
		Handler: Handler{
			log:        logger.New("handlers").File("due_type_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DueTypeHandler) Register() {
	dueTypes := h.router.Group("/due-types")

	dueTypes.Get("", h.getDueTypes)
	dueTypes.Post("", h.createDueType)
	dueTypes.Get("/:id", h.getDueType)
	dueTypes.Put("/:id", h.updateDueType)
	dueTypes.Delete("/:id", h.deleteDueType)
}

func (h *DueTypeHandler) getDueTypes(c *fiber.Ctx) error {
	dueTypes, err := h.dueTypeController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"dueTypes": dueTypes})
}

func (h *DueTypeHandler) getDueType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	dueType, err := h.dueTypeController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"dueType": dueType})
}

func (h *DueTypeHandler) createDueType(c *fiber.Ctx) error {
	var req dueTypesController.DueTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	dueType, err := h.dueTypeController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"dueType": dueType})
}

func (h *DueTypeHandler) updateDueType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dueTypesController.DueTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	dueType, err := h.dueTypeController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"dueType": dueType})
}

func (h *DueTypeHandler) deleteDueType(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.dueTypeController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
