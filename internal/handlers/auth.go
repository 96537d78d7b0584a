package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/auth"
	"github.com/jobtrackd/jobtrackd/internal/services"
	"github.com/jobtrackd/jobtrackd/internal/utils"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

// AuthHandler handles account routes
type AuthHandler struct {
	Service  *services.AuthService
	Sessions *auth.Sessions
}

// Register handles POST /register
// @Summary Register an account
// @Description Create a new account from email, password and confirmation
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req validation.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Register(req.Email, req.Password, req.ConfirmPassword))
}

// Login handles POST /login
// @Summary Log in
// @Description Verify credentials and establish an authenticated session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.LoginRequest true "Login payload"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validation.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Login(req.Email, req.Password, h.Sessions.Bind(c)))
}

// Logout handles DELETE /logout
// @Summary Log out
// @Description Destroy the caller's session and clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /logout [delete]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return utils.WriteResult(c, h.Service.Logout(h.Sessions.Bind(c)))
}
