package service

import (
	"context"
	"errors"
	"fmt"

	"clinic-backend/internal/metrics"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
)

// PatientService exposes only the patients registered by the acting user.
// A patient owned by someone else is reported exactly like a missing one.
type PatientService struct {
	patientRepo PatientStore
	mappingRepo MappingStore
	tx          Transactor
	metrics     *metrics.Metrics
}

func NewPatientService(patientRepo PatientStore, mappingRepo MappingStore, tx Transactor, m *metrics.Metrics) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		mappingRepo: mappingRepo,
		tx:          tx,
		metrics:     m,
	}
}

// GetPatients retrieves the patients owned by userID
func (s *PatientService) GetPatients(ctx context.Context, userID uint) ([]models.Patient, error) {
	patients, err := s.patientRepo.GetPatientsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// GetPatientByID retrieves a patient owned by userID
func (s *PatientService) GetPatientByID(ctx context.Context, userID, id uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetOwnedPatient(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// CreatePatient registers a patient owned by userID
func (s *PatientService) CreatePatient(ctx context.Context, userID uint, input PatientInput) (*models.Patient, error) {
	input.normalize()

	verr := validateAll(&input)
	if err := s.checkEmail(ctx, verr, &input, 0); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("patient")
		return nil, err
	}

	patient := &models.Patient{CreatedByID: userID}
	input.applyTo(patient)
	if err := s.patientRepo.CreatePatient(ctx, patient); err != nil {
		return nil, s.writeError(err, "create")
	}
	return patient, nil
}

// UpdatePatient writes the supplied fields of a patient owned by userID
func (s *PatientService) UpdatePatient(ctx context.Context, userID, id uint, input PatientInput) (*models.Patient, error) {
	patient, err := s.GetPatientByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	input.normalize()

	verr := validatePresent(&input)
	if err := s.checkEmail(ctx, verr, &input, patient.ID); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("patient")
		return nil, err
	}

	input.applyTo(patient)
	if err := s.patientRepo.UpdatePatient(ctx, patient); err != nil {
		return nil, s.writeError(err, "update")
	}
	return patient, nil
}

// DeletePatient removes a patient owned by userID together with all its assignment rows
func (s *PatientService) DeletePatient(ctx context.Context, userID, id uint) error {
	var purged int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetPatientByID(ctx, userID, id); err != nil {
			return err
		}

		n, err := s.mappingRepo.DeleteMappingsByPatient(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete patient mappings: %w", err)
		}
		purged = n

		if err := s.patientRepo.DeleteOwnedPatient(ctx, userID, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrPatientNotFound
			}
			return fmt.Errorf("failed to delete patient: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.AddMappingsPurged("patient", purged)
	return nil
}

func (s *PatientService) checkEmail(ctx context.Context, verr *ValidationError, input *PatientInput, excludeID uint) error {
	if input.Email == nil || verr.Has("email") {
		return nil
	}
	taken, err := s.patientRepo.EmailTaken(ctx, *input.Email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check patient email: %w", err)
	}
	if taken {
		verr.Add("email", msgPatientEmail)
	}
	return nil
}

// writeError maps a lost race on the email index to the email field
func (s *PatientService) writeError(err error, action string) error {
	if !errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("failed to %s patient: %w", action, err)
	}

	s.metrics.IncrementValidationFailure("patient")
	return fieldError("email", msgPatientEmail)
}
