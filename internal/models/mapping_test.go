package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSpecialtyValid(t *testing.T) {
	for _, s := range Specialties {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Specialty("surgery").Valid())
	assert.False(t, Specialty("").Valid())
	assert.False(t, Specialty("Cardiology").Valid())
}

func TestMappingDeactivate(t *testing.T) {
	m := &PatientDoctorMapping{}
	require.NoError(t, m.BeforeSave(nil))
	require.True(t, m.IsActive())
	require.NotNil(t, m.ActiveKey)
	assert.True(t, *m.ActiveKey)

	require.NoError(t, m.Deactivate())
	assert.False(t, m.IsActive())
	assert.Nil(t, m.ActiveKey)

	assert.ErrorIs(t, m.Deactivate(), ErrMappingInactive)

	require.NoError(t, m.BeforeSave(nil))
	assert.Nil(t, m.ActiveKey, "inactive rows never regain the active key")
}

func TestPatientHelpers(t *testing.T) {
	p := &Patient{
		CreatedByID: 7,
		DateOfBirth: datatypes.Date(time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC)),
	}
	assert.True(t, p.OwnedBy(7))
	assert.False(t, p.OwnedBy(8))
	assert.Equal(t, "1990-03-04", p.BirthDate())
}
