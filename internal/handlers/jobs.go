package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/services"
	"github.com/jobtrackd/jobtrackd/internal/utils"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

// JobsHandler handles job-application routes
type JobsHandler struct {
	Service *services.JobService
}

// SubmitJob handles POST /jobs
// @Summary Submit a job application
// @Description Record a new job application for the authenticated user
// @Tags Jobs
// @Accept json
// @Produce json
// @Param body body validation.SubmitJobRequest true "Job payload"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs [post]
func (h *JobsHandler) SubmitJob(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	var req validation.SubmitJobRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}
	req.Normalize()

	return utils.WriteResult(c, h.Service.Submit(userID, &req))
}

// DeleteJob handles DELETE /jobs
// @Summary Delete a job application
// @Description Remove the application matching the full natural key
// @Tags Jobs
// @Accept json
// @Produce json
// @Param body body validation.JobKeyRequest true "Job natural key"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs [delete]
func (h *JobsHandler) DeleteJob(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	var req validation.JobKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"body": "Invalid input"})
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Delete(userID, &req))
}

// GetJobs handles GET /jobs
// @Summary List job applications
// @Description List every application owned by the authenticated user
// @Tags Jobs
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs [get]
func (h *JobsHandler) GetJobs(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	return utils.WriteResult(c, h.Service.List(userID))
}

// GetJobDetail handles GET /jobs/detail
// @Summary Get one job application
// @Description Fetch the application matching the natural key, with country joined
// @Tags Jobs
// @Produce json
// @Param companyName query string true "Company name"
// @Param appliedPosition query string true "Applied position"
// @Param dateApplied query string true "Date applied (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs/detail [get]
func (h *JobsHandler) GetJobDetail(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.session")
	}

	req := validation.JobKeyRequest{
		CompanyName:     c.Query("companyName"),
		AppliedPosition: c.Query("appliedPosition"),
		DateApplied:     c.Query("dateApplied"),
	}

	if details := validation.Check(&req); details != nil {
		return utils.ValidationErrorResponse(c, details)
	}

	return utils.WriteResult(c, h.Service.Detail(userID, &req))
}
