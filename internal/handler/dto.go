package handler

import (
	"time"

	"clinic-backend/internal/models"
)

// PatientResponse is the public shape of a patient
type PatientResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DateOfBirth    string    `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedBy      string    `json:"created_by"`
	CreatedByID    uint      `json:"created_by_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewPatientResponse(p *models.Patient) PatientResponse {
	return PatientResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		DateOfBirth:    p.BirthDate(),
		Gender:         p.Gender,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		CreatedBy:      p.CreatedBy.Username,
		CreatedByID:    p.CreatedByID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewPatientResponses(patients []models.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, NewPatientResponse(&patients[i]))
	}
	return out
}

// MappingResponse is the public shape of an assignment, with both sides expanded
type MappingResponse struct {
	ID             uint                 `json:"id"`
	Patient        uint                 `json:"patient"`
	Doctor         uint                 `json:"doctor"`
	PatientDetails PatientResponse      `json:"patient_details"`
	DoctorDetails  models.Doctor        `json:"doctor_details"`
	AssignedAt     time.Time            `json:"assigned_at"`
	Notes          string               `json:"notes"`
	IsActive       bool                 `json:"is_active"`
	Status         models.MappingStatus `json:"status"`
}

func NewMappingResponse(m *models.PatientDoctorMapping) MappingResponse {
	return MappingResponse{
		ID:             m.ID,
		Patient:        m.PatientID,
		Doctor:         m.DoctorID,
		PatientDetails: NewPatientResponse(&m.Patient),
		DoctorDetails:  m.Doctor,
		AssignedAt:     m.AssignedAt,
		Notes:          m.Notes,
		IsActive:       m.IsActive(),
		Status:         m.Status,
	}
}

func NewMappingResponses(mappings []models.PatientDoctorMapping) []MappingResponse {
	out := make([]MappingResponse, 0, len(mappings))
	for i := range mappings {
		out = append(out, NewMappingResponse(&mappings[i]))
	}
	return out
}
