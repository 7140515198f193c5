package handlers

import (
	"wisma/internal/app"
	housesController "wisma/internal/controllers/houses"
	"wisma/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type HouseHandler struct {
	Handler
	houseController housesController.HouseControllerInterface
}

func NewHouseHandler(app app.App, router fiber.Router) *HouseHandler {
	return &HouseHandler{
		houseController: app.Controllers.House,
		Handler: Handler{
			log:        logger.New("handlers").File("house_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HouseHandler) Register() {
	houses := h.router.Group("/houses")

	houses.Get("", h.getHouses)
	houses.Post("", h.createHouse)
	houses.Get("/:id", h.getHouse)
	houses.Put("/:id", h.updateHouse)
	houses.Delete("/:id", h.deleteHouse)
}

func (h *HouseHandler) getHouses(c *fiber.Ctx) error {
	houses, err := h.houseController.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"houses": houses})
}

func (h *HouseHandler) getHouse(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	house, err := h.houseController.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) createHouse(c *fiber.Ctx) error {
	var req housesController.HouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	house, err := h.houseController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) updateHouse(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req housesController.HouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	house, err := h.houseController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) deleteHouse(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.houseController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
