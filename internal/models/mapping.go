package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MappingStatus is the lifecycle state of a patient-doctor assignment
type MappingStatus string

const (
	MappingStatusActive   MappingStatus = "active"
	MappingStatusInactive MappingStatus = "inactive"
)

// ErrMappingInactive is returned when deactivating an assignment that is already inactive
var ErrMappingInactive = errors.New("mapping is already inactive")

// PatientDoctorMapping represents the patient_doctor_mappings table
//
// ActiveKey is TRUE while the row is active and NULL afterwards. Combined with the
// composite unique index it allows one active row per (patient, doctor) pair and any
// number of inactive history rows, on every supported database.
type PatientDoctorMapping struct {
	ID         uint          `gorm:"primaryKey"`
	PatientID  uint          `gorm:"not null;index;uniqueIndex:idx_mappings_active_pair,priority:1"`
	DoctorID   uint          `gorm:"not null;index;uniqueIndex:idx_mappings_active_pair,priority:2"`
	ActiveKey  *bool         `gorm:"uniqueIndex:idx_mappings_active_pair,priority:3"`
	Status     MappingStatus `gorm:"size:16;not null;default:'active';index"`
	Notes      string        `gorm:"type:text"`
	AssignedAt time.Time     `gorm:"autoCreateTime;not null;index"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID"`
}

// TableName specifies the table name for PatientDoctorMapping model
func (PatientDoctorMapping) TableName() string {
	return "patient_doctor_mappings"
}

// IsActive reports whether the assignment is currently in effect
func (m *PatientDoctorMapping) IsActive() bool {
	return m.Status == MappingStatusActive
}

// Deactivate moves the assignment from active to inactive.
// There is no way back; a new assignment must be created instead.
func (m *PatientDoctorMapping) Deactivate() error {
	if !m.IsActive() {
		return ErrMappingInactive
	}
	m.Status = MappingStatusInactive
	m.ActiveKey = nil
	return nil
}

// BeforeSave keeps ActiveKey in step with Status
func (m *PatientDoctorMapping) BeforeSave(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = MappingStatusActive
	}
	if m.IsActive() {
		active := true
		m.ActiveKey = &active
	} else {
		m.ActiveKey = nil
	}
	return nil
}
