package service

import (
	"strings"
	"time"

	"clinic-backend/internal/models"

	"gorm.io/datatypes"
)

// DoctorInput is the writable part of a doctor. Nil fields are left untouched on update.
type DoctorInput struct {
	Name                *string `json:"name" validate:"required,min=1,max=255"`
	Email               *string `json:"email" validate:"required,min=1,max=254,email"`
	Phone               *string `json:"phone" validate:"required,min=1,max=20"`
	Specialty           *string `json:"specialty" validate:"required,specialty"`
	LicenseNumber       *string `json:"license_number" validate:"required,min=1,max=100"`
	YearsOfExperience   *int    `json:"years_of_experience" validate:"required,min=0,max=60"`
	HospitalAffiliation *string `json:"hospital_affiliation" validate:"required,min=1,max=255"`
}

func (in *DoctorInput) normalize() {
	trim(in.Name, in.Email, in.Phone, in.Specialty, in.LicenseNumber, in.HospitalAffiliation)
}

func (in *DoctorInput) applyTo(d *models.Doctor) {
	setString(&d.Name, in.Name)
	setString(&d.Email, in.Email)
	setString(&d.Phone, in.Phone)
	if in.Specialty != nil {
		d.Specialty = models.Specialty(*in.Specialty)
	}
	setString(&d.LicenseNumber, in.LicenseNumber)
	if in.YearsOfExperience != nil {
		d.YearsOfExperience = *in.YearsOfExperience
	}
	setString(&d.HospitalAffiliation, in.HospitalAffiliation)
}

// PatientInput is the writable part of a patient. The owner never comes from input.
type PatientInput struct {
	Name           *string `json:"name" validate:"required,min=1,max=255"`
	Email          *string `json:"email" validate:"required,min=1,max=254,email"`
	Phone          *string `json:"phone" validate:"required,min=1,max=20"`
	DateOfBirth    *string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender         *string `json:"gender" validate:"required,min=1,max=20"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

func (in *PatientInput) normalize() {
	trim(in.Name, in.Email, in.Phone, in.DateOfBirth, in.Gender)
}

// applyTo copies supplied fields; DateOfBirth must already be validated
func (in *PatientInput) applyTo(p *models.Patient) {
	setString(&p.Name, in.Name)
	setString(&p.Email, in.Email)
	setString(&p.Phone, in.Phone)
	if in.DateOfBirth != nil {
		dob, _ := time.Parse(models.DateLayout, *in.DateOfBirth)
		p.DateOfBirth = datatypes.Date(dob)
	}
	setString(&p.Gender, in.Gender)
	setString(&p.Address, in.Address)
	setString(&p.MedicalHistory, in.MedicalHistory)
}

// MappingInput assigns a doctor to a patient
type MappingInput struct {
	Patient *uint   `json:"patient" validate:"required"`
	Doctor  *uint   `json:"doctor" validate:"required"`
	Notes   *string `json:"notes"`
}

// MappingNotesInput edits the notes of an active assignment
type MappingNotesInput struct {
	Notes *string `json:"notes" validate:"required"`
}

// RegisterInput creates an account
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput authenticates an account
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
