package repository

import (
	"context"

	"clinic-backend/internal/database"
	"clinic-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PatientRepository scopes every owner-facing query with created_by_id
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetPatientsByOwner retrieves the patients registered by ownerID, newest first
func (r *PatientRepository) GetPatientsByOwner(ctx context.Context, ownerID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := database.Conn(ctx, r.db).
		Where("created_by_id = ?", ownerID).
		Preload("CreatedBy").
		Order("created_at DESC, id DESC").
		Find(&patients).Error
	return patients, translate(err, "list patients")
}

// GetOwnedPatient retrieves a patient only when ownerID registered it
func (r *PatientRepository) GetOwnedPatient(ctx context.Context, ownerID, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := database.Conn(ctx, r.db).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Preload("CreatedBy").
		First(&patient).Error
	if err != nil {
		return nil, translate(err, "get patient")
	}
	return &patient, nil
}

// GetPatientByID retrieves a patient regardless of owner
func (r *PatientRepository) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&patient).Error
	if err != nil {
		return nil, translate(err, "get patient")
	}
	return &patient, nil
}

// CreatePatient inserts a patient and loads its owner
func (r *PatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	conn := database.Conn(ctx, r.db)
	if err := conn.Omit(clause.Associations).Create(patient).Error; err != nil {
		return translate(err, "create patient")
	}
	return translate(conn.First(&patient.CreatedBy, patient.CreatedByID).Error, "load patient owner")
}

// UpdatePatient writes every column of an existing patient
func (r *PatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return translate(database.Conn(ctx, r.db).Omit(clause.Associations).Save(patient).Error, "update patient")
}

// DeleteOwnedPatient hard deletes a patient registered by ownerID
func (r *PatientRepository) DeleteOwnedPatient(ctx context.Context, ownerID, id uint) error {
	result := database.Conn(ctx, r.db).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Delete(&models.Patient{})
	if result.Error != nil {
		return translate(result.Error, "delete patient")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EmailTaken reports whether another patient already uses email
func (r *PatientRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := database.Conn(ctx, r.db).Model(&models.Patient{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translate(err, "check patient email")
	}
	return count > 0, nil
}
