package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/auth"
	"github.com/jobtrackd/jobtrackd/internal/types"
)

// UserIDKey is where the resolved owner id is stored in the request context.
const UserIDKey = "user_id"

// RequireUser gates protected operations on an authenticated session. An
// anonymous caller is rejected before the service layer runs.
func RequireUser(sessions *auth.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := sessions.Bind(c).UserID()
		if !ok {
			return types.Unauthorized("auth.session")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
