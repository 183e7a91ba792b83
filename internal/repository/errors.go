package repository

import (
	"errors"
	"fmt"

	"clinic-backend/internal/database"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the lookup
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps driver errors onto the repository sentinels
func translate(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case database.IsDuplicateKey(err):
		return fmt.Errorf("failed to %s: %w", action, ErrDuplicate)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}
