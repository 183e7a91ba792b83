package repository

import (
	"context"

	"clinic-backend/internal/database"
	"clinic-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves every doctor ordered by name
func (r *DoctorRepository) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := database.Conn(ctx, r.db).
		Order("name ASC, id ASC").
		Find(&doctors).Error
	return doctors, translate(err, "list doctors")
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := database.Conn(ctx, r.db).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		return nil, translate(err, "get doctor")
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor
func (r *DoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return translate(database.Conn(ctx, r.db).Create(doctor).Error, "create doctor")
}

// UpdateDoctor writes every column of an existing doctor
func (r *DoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return translate(database.Conn(ctx, r.db).Save(doctor).Error, "update doctor")
}

// DeleteDoctor hard deletes a doctor row
func (r *DoctorRepository) DeleteDoctor(ctx context.Context, id uint) error {
	result := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&models.Doctor{})
	if result.Error != nil {
		return translate(result.Error, "delete doctor")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EmailTaken reports whether another doctor already uses email
func (r *DoctorRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email = ?", email, excludeID)
}

// LicenseTaken reports whether another doctor already holds license
func (r *DoctorRepository) LicenseTaken(ctx context.Context, license string, excludeID uint) (bool, error) {
	return r.exists(ctx, "license_number = ?", license, excludeID)
}

func (r *DoctorRepository) exists(ctx context.Context, cond string, value string, excludeID uint) (bool, error) {
	var count int64
	query := database.Conn(ctx, r.db).Model(&models.Doctor{}).Where(cond, value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translate(err, "check doctor uniqueness")
	}
	return count > 0, nil
}
