package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/services"
	"github.com/jobtrackd/jobtrackd/internal/utils"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

// ContactsHandler handles recruiter-contact routes
type ContactsHandler struct {
	Service *services.ContactService
}

// SubmitContact handles POST /contacts
// @Summary Submit a recruiter contact
// @Description Record a new recruiter contact for the authenticated user
// @Tags Contacts
// @Accept json
// @Produce json
// @Param body body validation.SubmitContactRequest true "Contact payload"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /contacts [post]
func (h *ContactsHandler) SubmitContact(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	var req validation.SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}
	req.Normalize()

	return utils.WriteResult(c, h.Service.Submit(userID, &req))
}

// DeleteContact handles DELETE /contacts
// @Summary Delete a recruiter contact
// @Description Remove the contact matching the contact email
// @Tags Contacts
// @Accept json
// @Produce json
// @Param body body validation.DeleteContactRequest true "Contact key"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /contacts [delete]
func (h *ContactsHandler) DeleteContact(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	var req validation.DeleteContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Delete(userID, &req))
}

// GetContacts handles GET /contacts
// @Summary List recruiter contacts
// @Description List every contact owned by the authenticated user
// @Tags Contacts
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /contacts [get]
func (h *ContactsHandler) GetContacts(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	return utils.WriteResult(c, h.Service.List(userID))
}
