package database

import (
	"encoding/json"
	"fmt"

	"github.com/jobtrackd/jobtrackd/data"
	"github.com/jobtrackd/jobtrackd/internal/models"
	"gorm.io/gorm"
)

type countrySeed struct {
	CountryID   int16  `json:"country_id"`
	CountryName string `json:"country_name"`
}

// Seed loads the static reference tables. Safe to run on every start:
// existing rows are left alone.
func Seed(db *gorm.DB) error {
	var countries []countrySeed
	if err := json.Unmarshal(data.Countries, &countries); err != nil {
		return fmt.Errorf("failed to parse country seed data: %w", err)
	}

	for _, c := range countries {
		row := models.Country{CountryID: c.CountryID, CountryName: c.CountryName}
		if err := db.Where("country_id = ?", c.CountryID).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed country %d: %w", c.CountryID, err)
		}
	}

	for i, name := range models.ApplicationStatusNames {
		row := models.ApplicationStatus{StatusID: int16(i), StatusName: name}
		if err := db.Where("status_id = ?", i).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed application status %q: %w", name, err)
		}
	}

	return nil
}
