package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.DatabaseConfig{
		Host:     "db",
		Port:     "3306",
		User:     "clinic",
		Password: "secret",
		Database: "records",
	})

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "clinic", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "records", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DatabaseConfig{
		Host: "pg", Port: "5432", User: "u", Password: "p", Database: "d", SSLMode: "disable",
	})
	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=d sslmode=disable TimeZone=UTC", dsn)
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"mysql duplicate", &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysqldriver.MySQLError{Number: 1452}, false},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: doctors.email (2067)"), true},
		{"other", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDuplicateKey(tc.err))
		})
	}
}

func TestTransactorRollsBack(t *testing.T) {
	db := openTestDB(t)
	tx := NewTransactor(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.InTx(ctx, func(ctx context.Context) error {
		require.NoError(t, Conn(ctx, db).Create(&models.User{Username: "rolled", PasswordHash: "x"}).Error)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "rolled").Count(&count).Error)
	assert.Zero(t, count)

	err = tx.InTx(ctx, func(ctx context.Context) error {
		return tx.InTx(ctx, func(ctx context.Context) error {
			return Conn(ctx, db).Create(&models.User{Username: "kept", PasswordHash: "x"}).Error
		})
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "kept").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestActiveMappingUniqueIndex(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Username: "owner", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	doctor := models.Doctor{Name: "Ada", Email: "ada@example.com", Phone: "1", Specialty: models.SpecialtyGeneral, LicenseNumber: "L1", HospitalAffiliation: "H"}
	require.NoError(t, db.Create(&doctor).Error)
	patient := models.Patient{Name: "Bob", Email: "bob@example.com", Phone: "2", Gender: "male", CreatedByID: user.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&patient).Error)

	first := models.PatientDoctorMapping{PatientID: patient.ID, DoctorID: doctor.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&first).Error)

	second := models.PatientDoctorMapping{PatientID: patient.ID, DoctorID: doctor.ID}
	err := db.Omit(clause.Associations).Create(&second).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err), "unexpected error: %v", err)

	require.NoError(t, db.Model(&models.PatientDoctorMapping{}).
		Where("id = ?", first.ID).
		UpdateColumns(map[string]interface{}{"status": models.MappingStatusInactive, "active_key": nil}).Error)

	third := models.PatientDoctorMapping{PatientID: patient.ID, DoctorID: doctor.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&third).Error)
	require.NoError(t, db.Model(&models.PatientDoctorMapping{}).
		Where("id = ?", third.ID).
		UpdateColumns(map[string]interface{}{"status": models.MappingStatusInactive, "active_key": nil}).Error)

	fourth := models.PatientDoctorMapping{PatientID: patient.ID, DoctorID: doctor.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&fourth).Error, "several inactive rows may coexist")
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(sqlite.Open(SQLiteDSN(":memory:")), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}
