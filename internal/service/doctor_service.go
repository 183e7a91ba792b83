package service

import (
	"context"
	"errors"
	"fmt"

	"clinic-backend/internal/metrics"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
)

type DoctorService struct {
	doctorRepo  DoctorStore
	mappingRepo MappingStore
	tx          Transactor
	metrics     *metrics.Metrics
}

func NewDoctorService(doctorRepo DoctorStore, mappingRepo MappingStore, tx Transactor, m *metrics.Metrics) *DoctorService {
	return &DoctorService{
		doctorRepo:  doctorRepo,
		mappingRepo: mappingRepo,
		tx:          tx,
		metrics:     m,
	}
}

// GetAllDoctors retrieves every doctor; doctors are shared by all users
func (s *DoctorService) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.doctorRepo.GetAllDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// GetDoctorByID retrieves a doctor by ID
func (s *DoctorService) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetDoctorByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

// CreateDoctor validates every field, then inserts the doctor
func (s *DoctorService) CreateDoctor(ctx context.Context, input DoctorInput) (*models.Doctor, error) {
	input.normalize()

	verr := validateAll(&input)
	if err := s.checkUnique(ctx, verr, &input, 0); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("doctor")
		return nil, err
	}

	doctor := &models.Doctor{}
	input.applyTo(doctor)
	if err := s.doctorRepo.CreateDoctor(ctx, doctor); err != nil {
		return nil, s.writeError(ctx, err, &input, 0, "create")
	}
	return doctor, nil
}

// UpdateDoctor validates and writes only the supplied fields
func (s *DoctorService) UpdateDoctor(ctx context.Context, id uint, input DoctorInput) (*models.Doctor, error) {
	doctor, err := s.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.normalize()

	verr := validatePresent(&input)
	if err := s.checkUnique(ctx, verr, &input, doctor.ID); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		s.metrics.IncrementValidationFailure("doctor")
		return nil, err
	}

	input.applyTo(doctor)
	if err := s.doctorRepo.UpdateDoctor(ctx, doctor); err != nil {
		return nil, s.writeError(ctx, err, &input, doctor.ID, "update")
	}
	return doctor, nil
}

// DeleteDoctor removes the doctor and every assignment row referencing it in one transaction
func (s *DoctorService) DeleteDoctor(ctx context.Context, id uint) error {
	var purged int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		n, err := s.mappingRepo.DeleteMappingsByDoctor(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete doctor mappings: %w", err)
		}
		purged = n

		if err := s.doctorRepo.DeleteDoctor(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrDoctorNotFound
			}
			return fmt.Errorf("failed to delete doctor: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.AddMappingsPurged("doctor", purged)
	return nil
}

// checkUnique records email and license collisions with other doctors.
// Fields that already failed format checks are skipped.
func (s *DoctorService) checkUnique(ctx context.Context, verr *ValidationError, input *DoctorInput, excludeID uint) error {
	if input.Email != nil && !verr.Has("email") {
		taken, err := s.doctorRepo.EmailTaken(ctx, *input.Email, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check doctor email: %w", err)
		}
		if taken {
			verr.Add("email", msgDoctorEmail)
		}
	}

	if input.LicenseNumber != nil && !verr.Has("license_number") {
		taken, err := s.doctorRepo.LicenseTaken(ctx, *input.LicenseNumber, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check doctor license: %w", err)
		}
		if taken {
			verr.Add("license_number", msgDoctorLicense)
		}
	}
	return nil
}

// writeError turns a lost race on a unique index into the matching field error
func (s *DoctorService) writeError(ctx context.Context, err error, input *DoctorInput, excludeID uint, action string) error {
	if !errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("failed to %s doctor: %w", action, err)
	}

	s.metrics.IncrementValidationFailure("doctor")
	verr := &ValidationError{}
	if checkErr := s.checkUnique(ctx, verr, input, excludeID); checkErr == nil && len(verr.Fields) > 0 {
		return verr
	}
	return fieldError(NonFieldErrors, "A doctor with these details already exists.")
}
