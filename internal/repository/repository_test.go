package repository_test

import (
	"context"
	"testing"
	"time"

	"clinic-backend/internal/database"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	users    *repository.UserRepository
	doctors  *repository.DoctorRepository
	patients *repository.PatientRepository
	mappings *repository.MappingRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.users = repository.NewUserRepo(s.db)
	s.doctors = repository.NewDoctorRepo(s.db)
	s.patients = repository.NewPatientRepo(s.db)
	s.mappings = repository.NewMappingRepo(s.db)
}

func (s *RepositorySuite) newUser(username string) *models.User {
	user := &models.User{Username: username, PasswordHash: "hash"}
	s.Require().NoError(s.users.CreateUser(s.ctx, user))
	return user
}

func (s *RepositorySuite) newDoctor(email, license string) *models.Doctor {
	doctor := &models.Doctor{
		Name:                "Dr " + license,
		Email:               email,
		Phone:               "555-0100",
		Specialty:           models.SpecialtyCardiology,
		LicenseNumber:       license,
		YearsOfExperience:   10,
		HospitalAffiliation: "General",
	}
	s.Require().NoError(s.doctors.CreateDoctor(s.ctx, doctor))
	return doctor
}

func (s *RepositorySuite) newPatient(owner *models.User, email string) *models.Patient {
	patient := &models.Patient{
		Name:        "Patient " + email,
		Email:       email,
		Phone:       "555-0200",
		DateOfBirth: datatypes.Date(time.Date(1985, time.June, 1, 0, 0, 0, 0, time.UTC)),
		Gender:      "female",
		CreatedByID: owner.ID,
	}
	s.Require().NoError(s.patients.CreatePatient(s.ctx, patient))
	return patient
}

func (s *RepositorySuite) assign(patient *models.Patient, doctor *models.Doctor) *models.PatientDoctorMapping {
	mapping := &models.PatientDoctorMapping{PatientID: patient.ID, DoctorID: doctor.ID, Notes: "initial"}
	s.Require().NoError(s.mappings.CreateMapping(s.ctx, mapping))
	return mapping
}

func (s *RepositorySuite) TestUserRepository() {
	user := s.newUser("alice")

	s.Run("duplicate username", func() {
		err := s.users.CreateUser(s.ctx, &models.User{Username: "alice", PasswordHash: "x"})
		s.Require().ErrorIs(err, repository.ErrDuplicate)
	})

	s.Run("missing user", func() {
		_, err := s.users.FindUserByUsername(s.ctx, "nobody")
		s.Require().ErrorIs(err, repository.ErrNotFound)
	})

	s.Run("refresh token lifecycle", func() {
		token := &models.RefreshToken{UserID: user.ID, TokenHash: "h1", ExpiresAt: time.Now().UTC().Add(time.Hour)}
		s.Require().NoError(s.users.CreateRefreshToken(s.ctx, token))

		found, err := s.users.FindRefreshTokenByHash(s.ctx, "h1")
		s.Require().NoError(err)
		s.Equal("alice", found.User.Username)

		s.Require().NoError(s.users.RevokeRefreshTokenByHash(s.ctx, "h1"))
		_, err = s.users.FindRefreshTokenByHash(s.ctx, "h1")
		s.Require().ErrorIs(err, repository.ErrNotFound)
	})

	s.Run("expired refresh token", func() {
		token := &models.RefreshToken{UserID: user.ID, TokenHash: "h2", ExpiresAt: time.Now().UTC().Add(-time.Minute)}
		s.Require().NoError(s.users.CreateRefreshToken(s.ctx, token))
		_, err := s.users.FindRefreshTokenByHash(s.ctx, "h2")
		s.Require().ErrorIs(err, repository.ErrNotFound)
	})
}

func (s *RepositorySuite) TestDoctorUniqueness() {
	first := s.newDoctor("a@clinic.test", "L1")

	taken, err := s.doctors.EmailTaken(s.ctx, "a@clinic.test", 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = s.doctors.EmailTaken(s.ctx, "a@clinic.test", first.ID)
	s.Require().NoError(err)
	s.False(taken, "a doctor never collides with itself")

	taken, err = s.doctors.LicenseTaken(s.ctx, "L1", 0)
	s.Require().NoError(err)
	s.True(taken)

	dup := &models.Doctor{Name: "x", Email: "b@clinic.test", Phone: "1", Specialty: models.SpecialtyGeneral, LicenseNumber: "L1", HospitalAffiliation: "x"}
	s.Require().ErrorIs(s.doctors.CreateDoctor(s.ctx, dup), repository.ErrDuplicate)
}

func (s *RepositorySuite) TestDoctorOrderingAndDelete() {
	s.newDoctor("z@clinic.test", "Z")
	b := s.newDoctor("b@clinic.test", "B")
	s.newDoctor("m@clinic.test", "M")

	doctors, err := s.doctors.GetAllDoctors(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(doctors, 3)
	s.Equal([]string{"Dr B", "Dr M", "Dr Z"}, []string{doctors[0].Name, doctors[1].Name, doctors[2].Name})

	s.Require().NoError(s.doctors.DeleteDoctor(s.ctx, b.ID))
	s.Require().ErrorIs(s.doctors.DeleteDoctor(s.ctx, b.ID), repository.ErrNotFound)
	_, err = s.doctors.GetDoctorByID(s.ctx, b.ID)
	s.Require().ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestPatientOwnerScoping() {
	alice := s.newUser("alice")
	bob := s.newUser("bob")
	patient := s.newPatient(alice, "p1@clinic.test")
	s.Equal("alice", patient.CreatedBy.Username)

	_, err := s.patients.GetOwnedPatient(s.ctx, bob.ID, patient.ID)
	s.Require().ErrorIs(err, repository.ErrNotFound)

	owned, err := s.patients.GetOwnedPatient(s.ctx, alice.ID, patient.ID)
	s.Require().NoError(err)
	s.Equal("1985-06-01", owned.BirthDate())

	list, err := s.patients.GetPatientsByOwner(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Empty(list)

	s.Require().ErrorIs(s.patients.DeleteOwnedPatient(s.ctx, bob.ID, patient.ID), repository.ErrNotFound)
	s.Require().NoError(s.patients.DeleteOwnedPatient(s.ctx, alice.ID, patient.ID))
}

func (s *RepositorySuite) TestPatientEmailUnique() {
	alice := s.newUser("alice")
	bob := s.newUser("bob")
	first := s.newPatient(alice, "shared@clinic.test")

	taken, err := s.patients.EmailTaken(s.ctx, "shared@clinic.test", 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = s.patients.EmailTaken(s.ctx, "shared@clinic.test", first.ID)
	s.Require().NoError(err)
	s.False(taken)

	dup := &models.Patient{Name: "x", Email: "shared@clinic.test", Phone: "1", Gender: "male", CreatedByID: bob.ID}
	s.Require().ErrorIs(s.patients.CreatePatient(s.ctx, dup), repository.ErrDuplicate)
}

func (s *RepositorySuite) TestMappingLifecycle() {
	alice := s.newUser("alice")
	doctor := s.newDoctor("d@clinic.test", "L1")
	patient := s.newPatient(alice, "p@clinic.test")

	first := s.assign(patient, doctor)
	s.True(first.IsActive())
	s.Equal(doctor.Email, first.Doctor.Email)
	s.Equal("alice", first.Patient.CreatedBy.Username)
	s.False(first.AssignedAt.IsZero())

	exists, err := s.mappings.ActiveMappingExists(s.ctx, patient.ID, doctor.ID)
	s.Require().NoError(err)
	s.True(exists)

	dup := &models.PatientDoctorMapping{PatientID: patient.ID, DoctorID: doctor.ID}
	s.Require().ErrorIs(s.mappings.CreateMapping(s.ctx, dup), repository.ErrDuplicate)

	s.Require().NoError(s.mappings.UpdateMappingNotes(s.ctx, first.ID, "follow up"))
	s.Require().NoError(s.mappings.UpdateMappingNotes(s.ctx, first.ID, "follow up"), "unchanged notes still match")

	s.Require().NoError(s.mappings.DeactivateMapping(s.ctx, first.ID))
	s.Require().ErrorIs(s.mappings.DeactivateMapping(s.ctx, first.ID), repository.ErrNotFound)
	s.Require().ErrorIs(s.mappings.UpdateMappingNotes(s.ctx, first.ID, "late"), repository.ErrNotFound)

	_, err = s.mappings.GetActiveMapping(s.ctx, first.ID)
	s.Require().ErrorIs(err, repository.ErrNotFound)

	active, err := s.mappings.GetActiveMappingsByOwner(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Empty(active)

	second := s.assign(patient, doctor)
	s.NotEqual(first.ID, second.ID)

	byPatient, err := s.mappings.GetActiveMappingsByPatient(s.ctx, patient.ID)
	s.Require().NoError(err)
	s.Require().Len(byPatient, 1)
	s.Equal(second.ID, byPatient[0].ID)

	history, err := s.mappings.GetMappingHistoryByPatient(s.ctx, patient.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(second.ID, history[0].ID, "newest first")
	s.Equal(models.MappingStatusInactive, history[1].Status)
	s.Equal("follow up", history[1].Notes)
}

func (s *RepositorySuite) TestMappingsScopedToOwner() {
	alice := s.newUser("alice")
	bob := s.newUser("bob")
	doctor := s.newDoctor("d@clinic.test", "L1")
	mine := s.newPatient(alice, "mine@clinic.test")
	theirs := s.newPatient(bob, "theirs@clinic.test")
	s.assign(mine, doctor)
	s.assign(theirs, doctor)

	list, err := s.mappings.GetActiveMappingsByOwner(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(mine.ID, list[0].PatientID)
}

func (s *RepositorySuite) TestPurgeInsideTransaction() {
	alice := s.newUser("alice")
	doctor := s.newDoctor("d@clinic.test", "L1")
	other := s.newDoctor("o@clinic.test", "L2")
	patient := s.newPatient(alice, "p@clinic.test")

	old := s.assign(patient, doctor)
	s.Require().NoError(s.mappings.DeactivateMapping(s.ctx, old.ID))
	s.assign(patient, doctor)
	s.assign(patient, other)

	tx := database.NewTransactor(s.db)
	err := tx.InTx(s.ctx, func(ctx context.Context) error {
		removed, err := s.mappings.DeleteMappingsByDoctor(ctx, doctor.ID)
		s.Require().NoError(err)
		s.Equal(int64(2), removed, "inactive rows go too")
		return s.doctors.DeleteDoctor(ctx, doctor.ID)
	})
	s.Require().NoError(err)

	history, err := s.mappings.GetMappingHistoryByPatient(s.ctx, patient.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(other.ID, history[0].DoctorID)

	removed, err := s.mappings.DeleteMappingsByPatient(s.ctx, patient.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), removed)
}
