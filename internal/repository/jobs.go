package repository

import (
	"errors"
	"time"

	"github.com/jobtrackd/jobtrackd/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Jobs persists job applications.
type Jobs struct {
	db *gorm.DB
}

// NewJobs creates a Jobs repository.
func NewJobs(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// JobRecord is the listing shape for one application.
type JobRecord struct {
	CompanyName     string  `json:"companyName"`
	AppliedPosition string  `json:"appliedPosition"`
	CompanyAddress  *string `json:"companyAddress"`
	DateApplied     string  `json:"dateApplied"`
	CountryID       int16   `json:"countryId"`
	CompanyWebsite  *string `json:"companyWebsite"`
	StatusID        int16   `json:"statusId"`
	StatusText      string  `json:"statusText"`
	AdditionalNotes *string `json:"additionalNotes"`
}

// JobDetail is the single-record shape, joined with the country reference.
type JobDetail struct {
	JobRecord
	CountryName *string   `json:"countryName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Create inserts a new application. Returns ErrConflict when the composite
// key (owner, company, position, date) already exists.
func (r *Jobs) Create(job *models.JobApplication) error {
	return translate(r.db.Create(job).Error)
}

// Delete removes the application matching the full natural key, scoped by
// owner. Zero rows affected is not an error.
func (r *Jobs) Delete(userID, companyName, appliedPosition string, dateApplied time.Time) (int64, error) {
	res := r.db.Where(
		"user_id = ? AND company_name = ? AND applied_position = ? AND date_applied = ?",
		userID, companyName, appliedPosition, datatypes.Date(dateApplied),
	).Delete(&models.JobApplication{})
	return res.RowsAffected, translate(res.Error)
}

// ListByUser returns all applications owned by userID.
func (r *Jobs) ListByUser(userID string) ([]JobRecord, error) {
	var jobs []models.JobApplication
	err := r.db.Where("user_id = ?", userID).
		Order("date_applied DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	records := make([]JobRecord, 0, len(jobs))
	for i := range jobs {
		records = append(records, toJobRecord(&jobs[i]))
	}
	return records, nil
}

// FindByKey returns the single application matching the full natural key,
// with its country reference joined in. Returns ErrNotFound on no match.
func (r *Jobs) FindByKey(userID, companyName, appliedPosition string, dateApplied time.Time) (*JobDetail, error) {
	var job models.JobApplication
	err := r.db.Joins("Country").Where(
		"job_applications.user_id = ? AND job_applications.company_name = ? AND applied_position = ? AND date_applied = ?",
		userID, companyName, appliedPosition, datatypes.Date(dateApplied),
	).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &JobDetail{
		JobRecord: toJobRecord(&job),
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
	if job.Country != nil {
		detail.CountryName = &job.Country.CountryName
	}
	return detail, nil
}

func toJobRecord(job *models.JobApplication) JobRecord {
	return JobRecord{
		CompanyName:     job.CompanyName,
		AppliedPosition: job.AppliedPosition,
		CompanyAddress:  job.CompanyAddress,
		DateApplied:     time.Time(job.DateApplied).Format(dateLayout),
		CountryID:       job.CountryID,
		CompanyWebsite:  job.CompanyWebsite,
		StatusID:        job.StatusID,
		StatusText:      models.StatusName(job.StatusID),
		AdditionalNotes: job.AdditionalNotes,
	}
}
