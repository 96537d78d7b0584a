package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/services"
	"github.com/jobtrackd/jobtrackd/internal/utils"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

// RemindersHandler handles reminder routes
type RemindersHandler struct {
	Service *services.ReminderService
}

// PostReminder handles POST /reminders
// @Summary Create a reminder
// @Description Schedule a reminder for the authenticated user
// @Tags Reminders
// @Accept json
// @Produce json
// @Param body body validation.PostReminderRequest true "Reminder payload"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /reminders [post]
func (h *RemindersHandler) PostReminder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	var req validation.PostReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Post(userID, &req))
}

// DeleteReminder handles DELETE /reminders
// @Summary Delete a reminder
// @Description Remove the reminder matching the reminder id
// @Tags Reminders
// @Accept json
// @Produce json
// @Param body body validation.DeleteReminderRequest true "Reminder key"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /reminders [delete]
func (h *RemindersHandler) DeleteReminder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	var req validation.DeleteReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Delete(userID, &req))
}

// GetReminders handles GET /reminders
// @Summary List reminders
// @Description List every reminder owned by the authenticated user ordered by date
// @Tags Reminders
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /reminders [get]
func (h *RemindersHandler) GetReminders(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	return utils.WriteResult(c, h.Service.List(userID))
}
