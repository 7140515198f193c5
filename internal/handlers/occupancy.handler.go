package handlers

import (
	"wisma/internal/app"
	occupanciesController "wisma/internal/controllers/occupancies"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type OccupancyHandler struct {
	Handler
	occupancyController occupanciesController.OccupancyControllerInterface
}

func NewOccupancyHandler(app app.App, router fiber.Router) *OccupancyHandler {
	return &OccupancyHandler{
		occupancyController: app.Controllers.Occupancy,
		Handler: Handler{
			log:        logger.New("handlers").File("occupancy_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *OccupancyHandler) Register() {
	occupancies := h.router.Group("/occupancies")

	occupancies.Post("/assign", h.assign)
	occupancies.Post("/end-contract", h.endContract)
	occupancies.Get("/:id", h.getOccupancy)
	occupancies.Put("/:id", h.updateDates)
	occupancies.Delete("/:id", h.deleteOccupancy)

	h.router.Get("/houses/:id/occupancies", h.getByHouse)
}

func (h *OccupancyHandler) getByHouse(c *fiber.Ctx) error {
	houseID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	occupancies, err := h.occupancyController.GetByHouse(c.UserContext(), houseID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"occupancies": occupancies})
}

func (h *OccupancyHandler) getOccupancy(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	occupancy, err := h.occupancyController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"occupancy": occupancy})
}

func (h *OccupancyHandler) assign(c *fiber.Ctx) error {
	var req occupanciesController.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	occupancy, err := h.occupancyController.Assign(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"occupancy": occupancy})
}

func (h *OccupancyHandler) endContract(c *fiber.Ctx) error {
	var req occupanciesController.EndContractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	occupancy, err := h.occupancyController.EndContract(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"occupancy": occupancy})
}

func (h *OccupancyHandler) updateDates(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req occupanciesController.UpdateDatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	occupancy, err := h.occupancyController.UpdateDates(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"occupancy": occupancy})
}

func (h *OccupancyHandler) deleteOccupancy(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.occupancyController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
