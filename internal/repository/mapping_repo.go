package repository

import (
	"context"

	"clinic-backend/internal/database"
	"clinic-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MappingRepository struct {
	db *gorm.DB
}

func NewMappingRepo(db *gorm.DB) *MappingRepository {
	return &MappingRepository{db: db}
}

func (r *MappingRepository) withDetails(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db).
		Preload("Patient.CreatedBy").
		Preload("Doctor").
		Order("patient_doctor_mappings.assigned_at DESC, patient_doctor_mappings.id DESC")
}

// CreateMapping inserts an active assignment and loads its patient and doctor
func (r *MappingRepository) CreateMapping(ctx context.Context, mapping *models.PatientDoctorMapping) error {
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(mapping).Error; err != nil {
		return translate(err, "create mapping")
	}
	return translate(r.withDetails(ctx).First(mapping, mapping.ID).Error, "load mapping")
}

// GetActiveMapping retrieves an active assignment by ID
func (r *MappingRepository) GetActiveMapping(ctx context.Context, id uint) (*models.PatientDoctorMapping, error) {
	var mapping models.PatientDoctorMapping
	err := r.withDetails(ctx).
		Where("patient_doctor_mappings.id = ? AND patient_doctor_mappings.status = ?", id, models.MappingStatusActive).
		First(&mapping).Error
	if err != nil {
		return nil, translate(err, "get mapping")
	}
	return &mapping, nil
}

// GetActiveMappingsByOwner retrieves active assignments of every patient registered by ownerID
func (r *MappingRepository) GetActiveMappingsByOwner(ctx context.Context, ownerID uint) ([]models.PatientDoctorMapping, error) {
	var mappings []models.PatientDoctorMapping
	err := r.withDetails(ctx).
		Joins("JOIN patients ON patients.id = patient_doctor_mappings.patient_id").
		Where("patients.created_by_id = ? AND patient_doctor_mappings.status = ?", ownerID, models.MappingStatusActive).
		Find(&mappings).Error
	return mappings, translate(err, "list mappings")
}

// GetActiveMappingsByPatient retrieves active assignments of one patient
func (r *MappingRepository) GetActiveMappingsByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error) {
	var mappings []models.PatientDoctorMapping
	err := r.withDetails(ctx).
		Where("patient_doctor_mappings.patient_id = ? AND patient_doctor_mappings.status = ?", patientID, models.MappingStatusActive).
		Find(&mappings).Error
	return mappings, translate(err, "list patient mappings")
}

// GetMappingHistoryByPatient retrieves every assignment of one patient, inactive rows included
func (r *MappingRepository) GetMappingHistoryByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error) {
	var mappings []models.PatientDoctorMapping
	err := r.withDetails(ctx).
		Where("patient_doctor_mappings.patient_id = ?", patientID).
		Find(&mappings).Error
	return mappings, translate(err, "list patient mapping history")
}

// ActiveMappingExists reports whether the pair already has an active assignment
func (r *MappingRepository) ActiveMappingExists(ctx context.Context, patientID, doctorID uint) (bool, error) {
	var count int64
	err := database.Conn(ctx, r.db).Model(&models.PatientDoctorMapping{}).
		Where("patient_id = ? AND doctor_id = ? AND status = ?", patientID, doctorID, models.MappingStatusActive).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "check active mapping")
	}
	return count > 0, nil
}

// DeactivateMapping moves an active assignment to inactive and keeps the row
func (r *MappingRepository) DeactivateMapping(ctx context.Context, id uint) error {
	result := database.Conn(ctx, r.db).Model(&models.PatientDoctorMapping{}).
		Where("id = ? AND status = ?", id, models.MappingStatusActive).
		UpdateColumns(map[string]interface{}{
			"status":     models.MappingStatusInactive,
			"active_key": nil,
		})
	if result.Error != nil {
		return translate(result.Error, "deactivate mapping")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateMappingNotes replaces the notes of an active assignment
func (r *MappingRepository) UpdateMappingNotes(ctx context.Context, id uint, notes string) error {
	result := database.Conn(ctx, r.db).Model(&models.PatientDoctorMapping{}).
		Where("id = ? AND status = ?", id, models.MappingStatusActive).
		UpdateColumn("notes", notes)
	if result.Error != nil {
		return translate(result.Error, "update mapping notes")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMappingsByDoctor hard deletes every assignment row of a doctor
func (r *MappingRepository) DeleteMappingsByDoctor(ctx context.Context, doctorID uint) (int64, error) {
	result := database.Conn(ctx, r.db).Where("doctor_id = ?", doctorID).Delete(&models.PatientDoctorMapping{})
	return result.RowsAffected, translate(result.Error, "delete doctor mappings")
}

// DeleteMappingsByPatient hard deletes every assignment row of a patient
func (r *MappingRepository) DeleteMappingsByPatient(ctx context.Context, patientID uint) (int64, error) {
	result := database.Conn(ctx, r.db).Where("patient_id = ?", patientID).Delete(&models.PatientDoctorMapping{})
	return result.RowsAffected, translate(result.Error, "delete patient mappings")
}
