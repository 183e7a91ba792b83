package service

import (
	"context"
	"errors"
	"fmt"

	"clinic-backend/internal/metrics"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
)

const (
	detailAssignForeign = "You can only assign doctors to your own patients"
	detailModifyForeign = "You can only modify mappings for your own patients"
)

// Assignment events reported to metrics
const (
	EventMappingCreated     = "created"
	EventMappingDeactivated = "deactivated"
	EventMappingConflict    = "conflict"
)

type MappingService struct {
	mappingRepo MappingStore
	patientRepo PatientStore
	doctorRepo  DoctorStore
	metrics     *metrics.Metrics
}

func NewMappingService(mappingRepo MappingStore, patientRepo PatientStore, doctorRepo DoctorStore, m *metrics.Metrics) *MappingService {
	return &MappingService{
		mappingRepo: mappingRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		metrics:     m,
	}
}

// CreateMapping assigns a doctor to a patient owned by userID.
// Checks run in order: both records exist, the caller owns the patient, the pair has no active assignment.
func (s *MappingService) CreateMapping(ctx context.Context, userID uint, input MappingInput) (*models.PatientDoctorMapping, error) {
	if err := validateAll(&input).OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("mapping")
		return nil, err
	}

	verr := &ValidationError{}
	patient, err := s.patientRepo.GetPatientByID(ctx, *input.Patient)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to get patient: %w", err)
		}
		verr.Add("patient", invalidPK(*input.Patient))
	}
	if _, err := s.doctorRepo.GetDoctorByID(ctx, *input.Doctor); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to get doctor: %w", err)
		}
		verr.Add("doctor", invalidPK(*input.Doctor))
	}
	if err := verr.OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("mapping")
		return nil, err
	}

	if !patient.OwnedBy(userID) {
		return nil, &PermissionError{Detail: detailAssignForeign}
	}

	exists, err := s.mappingRepo.ActiveMappingExists(ctx, patient.ID, *input.Doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to check active mapping: %w", err)
	}
	if exists {
		return nil, s.conflict()
	}

	mapping := &models.PatientDoctorMapping{
		PatientID: patient.ID,
		DoctorID:  *input.Doctor,
		Status:    models.MappingStatusActive,
	}
	if input.Notes != nil {
		mapping.Notes = *input.Notes
	}
	if err := s.mappingRepo.CreateMapping(ctx, mapping); err != nil {
		// Another request won the race for this pair
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, s.conflict()
		}
		return nil, fmt.Errorf("failed to create mapping: %w", err)
	}

	s.metrics.IncrementMappingEvent(EventMappingCreated)
	return mapping, nil
}

// GetMappings retrieves active assignments of every patient owned by userID
func (s *MappingService) GetMappings(ctx context.Context, userID uint) ([]models.PatientDoctorMapping, error) {
	mappings, err := s.mappingRepo.GetActiveMappingsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return mappings, nil
}

// GetMappingByID retrieves an active assignment of a patient owned by userID
func (s *MappingService) GetMappingByID(ctx context.Context, userID, id uint) (*models.PatientDoctorMapping, error) {
	mapping, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !mapping.Patient.OwnedBy(userID) {
		return nil, ErrMappingNotFound
	}
	return mapping, nil
}

// GetPatientMappings retrieves the active assignments of one patient.
// A foreign patient is reported as not found, the same as a missing one.
func (s *MappingService) GetPatientMappings(ctx context.Context, userID, patientID uint) (*models.Patient, []models.PatientDoctorMapping, error) {
	patient, err := s.ownedPatient(ctx, userID, patientID)
	if err != nil {
		return nil, nil, err
	}

	mappings, err := s.mappingRepo.GetActiveMappingsByPatient(ctx, patient.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list patient mappings: %w", err)
	}
	return patient, mappings, nil
}

// GetPatientMappingHistory retrieves every assignment of one patient, inactive ones included
func (s *MappingService) GetPatientMappingHistory(ctx context.Context, userID, patientID uint) (*models.Patient, []models.PatientDoctorMapping, error) {
	patient, err := s.ownedPatient(ctx, userID, patientID)
	if err != nil {
		return nil, nil, err
	}

	mappings, err := s.mappingRepo.GetMappingHistoryByPatient(ctx, patient.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list patient mapping history: %w", err)
	}
	return patient, mappings, nil
}

// DeactivateMapping soft deletes an active assignment; the row is kept as history
func (s *MappingService) DeactivateMapping(ctx context.Context, userID, id uint) (*models.PatientDoctorMapping, error) {
	mapping, err := s.getModifiable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.mappingRepo.DeactivateMapping(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to deactivate mapping: %w", err)
	}
	if err := mapping.Deactivate(); err != nil {
		return nil, err
	}

	s.metrics.IncrementMappingEvent(EventMappingDeactivated)
	return mapping, nil
}

// UpdateMappingNotes edits the notes of an active assignment
func (s *MappingService) UpdateMappingNotes(ctx context.Context, userID, id uint, input MappingNotesInput) (*models.PatientDoctorMapping, error) {
	if err := validateAll(&input).OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("mapping")
		return nil, err
	}

	mapping, err := s.getModifiable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.mappingRepo.UpdateMappingNotes(ctx, id, *input.Notes); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to update mapping notes: %w", err)
	}

	mapping.Notes = *input.Notes
	return mapping, nil
}

func (s *MappingService) getActive(ctx context.Context, id uint) (*models.PatientDoctorMapping, error) {
	mapping, err := s.mappingRepo.GetActiveMapping(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return mapping, nil
}

// getModifiable loads an active assignment and refuses callers who do not own its patient
func (s *MappingService) getModifiable(ctx context.Context, userID, id uint) (*models.PatientDoctorMapping, error) {
	mapping, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !mapping.Patient.OwnedBy(userID) {
		return nil, &PermissionError{Detail: detailModifyForeign}
	}
	return mapping, nil
}

func (s *MappingService) ownedPatient(ctx context.Context, userID, patientID uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetOwnedPatient(ctx, userID, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *MappingService) conflict() error {
	s.metrics.IncrementMappingEvent(EventMappingConflict)
	return fieldError(NonFieldErrors, msgAlreadyAssigned)
}
