package handlers

import (
	"wisma/internal/app"
	residentsController "wisma/internal/controllers/residents"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type ResidentHandler struct {
	Handler
	residentController residentsController.ResidentControllerInterface
}

func NewResidentHandler(app app.App, router fiber.Router) *ResidentHandler {
	return &ResidentHandler{
		residentController: app.Controllers.Resident,
		Handler: Handler{
			log:        logger.New("handlers").File("resident_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ResidentHandler) Register() {
	residents := h.router.Group("/residents")

	residents.Get("", h.getResidents)
	residents.Post("", h.createResident)
	residents.Get("/:id", h.getResident)
	residents.Put("/:id", h.updateResident)
	residents.Delete("/:id", h.deleteResident)
}

func (h *ResidentHandler) getResidents(c *fiber.Ctx) error {
	residents, err := h.residentController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"residents": residents})
}

func (h *ResidentHandler) getResident(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	resident, err := h.residentController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"resident": resident})
}

func (h *ResidentHandler) createResident(c *fiber.Ctx) error {
	var req residentsController.ResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resident, err := h.residentController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"resident": resident})
}

func (h *ResidentHandler) updateResident(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req residentsController.ResidentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resident, err := h.residentController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"resident": resident})
}

func (h *ResidentHandler) deleteResident(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.residentController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
