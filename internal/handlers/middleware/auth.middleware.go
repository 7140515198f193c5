package middleware

import (
	"strings"
	"wisma/internal/logger"
	"wisma/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserKeyFiber is the Fiber locals key holding the authenticated user.
const UserKeyFiber = "User"

// RequireAuth validates the bearer access token and loads the user it was
// issued to. Unauthenticated requests never reach the handler.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").TraceFromContext(c.UserContext()).Function("RequireAuth")

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Info("missing authorization header")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			log.Info("invalid authorization header format")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		userID, err := m.authService.ParseAccessToken(tokenParts[1])
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		user, err := m.userRepo.GetByID(c.UserContext(), m.DB.SQL, userID)
		if err != nil {
			log.Info("user not found", "userID", userID)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(UserKeyFiber, user)
		return c.Next()
	}
}

// GetUser retrieves the authenticated user from the Fiber context. Nil when
// the route is unauthenticated.
func GetUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(UserKeyFiber).(*models.User); ok {
		return user
	}
	return nil
}
