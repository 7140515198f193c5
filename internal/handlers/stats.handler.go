package handlers

import (
	"time"
	"wisma/internal/app"
	statsController "wisma/internal/controllers/stats"
	"wisma/internal/logger"
	"wisma/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	Handler
	statsController statsController.StatsControllerInterface
}

func NewStatsHandler(app app.App, router fiber.Router) *StatsHandler {
	return &StatsHandler{
		statsController: app.Controllers.Stats,
		Handler: Handler{
			log:        logger.New("handlers").File("stats_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *StatsHandler) Register() {
	stats := h.router.Group("/stats")

	stats.Get("/dashboard", h.getDashboard)
	stats.Get("/monthly", h.getMonthlySeries)
	stats.Get("/earnings", h.getEarningReport)
}

func (h *StatsHandler) getDashboard(c *fiber.Ctx) error {
	dashboard, err := h.statsController.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dashboard)
}

func (h *StatsHandler) getMonthlySeries(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	if year < 1900 || year > 9999 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year parameter",
		})
	}

	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month parameter",
		})
	}

	series, err := h.statsController.MonthlySeries(c.UserContext(), year, month)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(series)
}

func (h *StatsHandler) getEarningReport(c *fiber.Ctx) error {
	var start, end *time.Time

	if raw := c.Query("startDate"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid startDate parameter",
			})
		}
		start = &parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid endDate parameter",
			})
		}
		end = &parsed
	}

	report, err := h.statsController.EarningReport(c.UserContext(), start, end)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(report)
}
