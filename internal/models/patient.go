package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates such as date_of_birth
const DateLayout = "2006-01-02"

// Patient represents the patients table
// CreatedByID is set once from the authenticated user and never changed afterwards
type Patient struct {
	ID             uint           `gorm:"primaryKey"`
	Name           string         `gorm:"size:255;not null"`
	Email          string         `gorm:"size:254;not null;uniqueIndex"`
	Phone          string         `gorm:"size:20;not null"`
	DateOfBirth    datatypes.Date `gorm:"not null"`
	Gender         string         `gorm:"size:20;not null"`
	Address        string         `gorm:"type:text"`
	MedicalHistory string         `gorm:"type:text"`
	CreatedByID    uint           `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relationships
	CreatedBy User `gorm:"foreignKey:CreatedByID"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// OwnedBy reports whether userID registered the patient
func (p *Patient) OwnedBy(userID uint) bool {
	return p.CreatedByID == userID
}

// BirthDate returns the date of birth formatted as YYYY-MM-DD
func (p *Patient) BirthDate() string {
	return time.Time(p.DateOfBirth).Format(DateLayout)
}
