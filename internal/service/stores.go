package service

import (
	"context"

	"clinic-backend/internal/models"
)

//go:generate mockgen -source=stores.go -destination=mocks/stores.go -package=mocks

// UserStore persists accounts and refresh tokens
type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(ctx context.Context, hash string) error
}

// DoctorStore persists doctors
type DoctorStore interface {
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteDoctor(ctx context.Context, id uint) error
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	LicenseTaken(ctx context.Context, license string, excludeID uint) (bool, error)
}

// PatientStore persists patients; owner-facing lookups take the owner explicitly
type PatientStore interface {
	GetPatientsByOwner(ctx context.Context, ownerID uint) ([]models.Patient, error)
	GetOwnedPatient(ctx context.Context, ownerID, id uint) (*models.Patient, error)
	GetPatientByID(ctx context.Context, id uint) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) error
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteOwnedPatient(ctx context.Context, ownerID, id uint) error
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
}

// MappingStore persists patient-doctor assignments
type MappingStore interface {
	CreateMapping(ctx context.Context, mapping *models.PatientDoctorMapping) error
	GetActiveMapping(ctx context.Context, id uint) (*models.PatientDoctorMapping, error)
	GetActiveMappingsByOwner(ctx context.Context, ownerID uint) ([]models.PatientDoctorMapping, error)
	GetActiveMappingsByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error)
	GetMappingHistoryByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error)
	ActiveMappingExists(ctx context.Context, patientID, doctorID uint) (bool, error)
	DeactivateMapping(ctx context.Context, id uint) error
	UpdateMappingNotes(ctx context.Context, id uint, notes string) error
	DeleteMappingsByDoctor(ctx context.Context, doctorID uint) (int64, error)
	DeleteMappingsByPatient(ctx context.Context, patientID uint) (int64, error)
}

// Transactor runs fn in one database transaction carried by ctx
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
