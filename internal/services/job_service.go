package services

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/models"
	"github.com/jobtrackd/jobtrackd/internal/repository"
	"github.com/jobtrackd/jobtrackd/internal/validation"
	"gorm.io/datatypes"
)

// JobService implements the job-application use cases. All operations are
// scoped by the authenticated owner id resolved from the session, never by
// anything client-supplied.
type JobService struct {
	jobs *repository.Jobs
}

// NewJobService creates a JobService.
func NewJobService(jobs *repository.Jobs) *JobService {
	return &JobService{jobs: jobs}
}

// Submit records a new application for userID. The request must already be
// validated and normalized.
func (s *JobService) Submit(userID string, req *validation.SubmitJobRequest) Result {
	dateApplied, err := time.Parse(validation.DateLayout, req.DateApplied)
	if err != nil {
		return failure("Valid date of application is required.", fiber.StatusBadRequest)
	}

	job := models.JobApplication{
		UserID:          userID,
		CompanyName:     req.CompanyName,
		AppliedPosition: req.AppliedPosition,
		DateApplied:     datatypes.Date(dateApplied),
		CompanyAddress:  req.CompanyAddress,
		CountryID:       int16(req.Country.Int()),
		CompanyWebsite:  req.CompanyWebsite,
		StatusID:        int16(req.Status.Int()),
		AdditionalNotes: req.Notes,
	}

	if err := s.jobs.Create(&job); err != nil {
		log.Printf("submit job: %v", err)
		return persistenceFailure(err,
			"Job application already exists.",
			"Error submitting job",
			"Error submitting job")
	}

	return success("Job submitted successfully", fiber.StatusCreated, nil)
}

// Delete removes the application matching the full natural key. The delete
// is idempotent: a key that matches nothing still reports success.
func (s *JobService) Delete(userID string, req *validation.JobKeyRequest) Result {
	dateApplied, err := time.Parse(validation.DateLayout, req.DateApplied)
	if err != nil {
		return failure("Invalid date format for dateApplied", fiber.StatusBadRequest)
	}

	if _, err := s.jobs.Delete(userID, req.CompanyName, req.AppliedPosition, dateApplied); err != nil {
		log.Printf("delete job: %v", err)
		return failure("Server error deleting job.", fiber.StatusInternalServerError)
	}

	return success("Job deleted successfully", fiber.StatusOK, nil)
}

// List returns every application owned by userID.
func (s *JobService) List(userID string) Result {
	jobs, err := s.jobs.ListByUser(userID)
	if err != nil {
		log.Printf("list jobs: %v", err)
		return failure("Server error fetching jobs.", fiber.StatusInternalServerError)
	}
	return success("success", fiber.StatusOK, jobs)
}

// Detail returns the single application matching the full natural key,
// joined with its country reference.
func (s *JobService) Detail(userID string, req *validation.JobKeyRequest) Result {
	dateApplied, err := time.Parse(validation.DateLayout, req.DateApplied)
	if err != nil {
		return failure("Invalid date format for dateApplied", fiber.StatusBadRequest)
	}

	detail, err := s.jobs.FindByKey(userID, req.CompanyName, req.AppliedPosition, dateApplied)
	if err != nil {
		log.Printf("job detail: %v", err)
		return persistenceFailure(err,
			"Error fetching job details",
			"Job details not found.",
			"Error fetching job details")
	}

	return success("success", fiber.StatusOK, detail)
}
