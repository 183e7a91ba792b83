package models

import "time"

// Specialty is the medical specialty of a doctor
type Specialty string

const (
	SpecialtyCardiology       Specialty = "cardiology"
	SpecialtyDermatology      Specialty = "dermatology"
	SpecialtyEndocrinology    Specialty = "endocrinology"
	SpecialtyGastroenterology Specialty = "gastroenterology"
	SpecialtyNeurology        Specialty = "neurology"
	SpecialtyOncology         Specialty = "oncology"
	SpecialtyOrthopedics      Specialty = "orthopedics"
	SpecialtyPediatrics       Specialty = "pediatrics"
	SpecialtyPsychiatry       Specialty = "psychiatry"
	SpecialtyRadiology        Specialty = "radiology"
	SpecialtyGeneral          Specialty = "general"
)

// Specialties lists every accepted specialty in display order
var Specialties = []Specialty{
	SpecialtyCardiology,
	SpecialtyDermatology,
	SpecialtyEndocrinology,
	SpecialtyGastroenterology,
	SpecialtyNeurology,
	SpecialtyOncology,
	SpecialtyOrthopedics,
	SpecialtyPediatrics,
	SpecialtyPsychiatry,
	SpecialtyRadiology,
	SpecialtyGeneral,
}

// Valid reports whether s is one of the enumerated specialties
func (s Specialty) Valid() bool {
	for _, known := range Specialties {
		if s == known {
			return true
		}
	}
	return false
}

const (
	MinYearsOfExperience = 0
	MaxYearsOfExperience = 60
)

// Doctor represents the doctors table
// Doctor records are shared by every authenticated user
type Doctor struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	Email               string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Phone               string    `gorm:"size:20;not null" json:"phone"`
	Specialty           Specialty `gorm:"size:50;not null;index" json:"specialty"`
	LicenseNumber       string    `gorm:"size:100;not null;uniqueIndex" json:"license_number"`
	YearsOfExperience   int       `gorm:"not null;check:chk_doctors_years_of_experience,years_of_experience >= 0 AND years_of_experience <= 60" json:"years_of_experience"`
	HospitalAffiliation string    `gorm:"size:255;not null" json:"hospital_affiliation"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
