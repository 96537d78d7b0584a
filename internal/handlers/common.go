package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/middleware"
)

// getUserID extracts the owner id resolved by the session gate.
func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user not found in context")
	}
	return userID, nil
}
