package models

// Country is a static lookup row; read-only from the request pipeline.
type Country struct {
	CountryID   int16  `gorm:"primaryKey;autoIncrement:false"`
	CountryName string `gorm:"size:255;not null"`
}

// TableName overrides the table name for Country
func (Country) TableName() string {
	return "country_ids"
}

// ApplicationStatus is one of the fixed ordered application-progress states.
type ApplicationStatus struct {
	StatusID   int16  `gorm:"primaryKey;autoIncrement:false"`
	StatusName string `gorm:"size:64;not null"`
}

// TableName overrides the table name for ApplicationStatus
func (ApplicationStatus) TableName() string {
	return "application_statuses"
}

// ApplicationStatusNames is the closed ordered set of progress states.
// Status ids index into this slice.
var ApplicationStatusNames = []string{
	"Have not applied",
	"Application sent",
	"On progress",
	"Interview invitation",
	"Accepted",
	"Rejected",
	"Needs follow-up",
}

// StatusName resolves a status id to its canonical name, or "" when the id
// is outside the enumeration.
func StatusName(id int16) string {
	if id < 0 || int(id) >= len(ApplicationStatusNames) {
		return ""
	}
	return ApplicationStatusNames[id]
}
