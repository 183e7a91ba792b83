package repository

import (
	"context"
	"time"

	"clinic-backend/internal/database"
	"clinic-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByUsername finds a user by username
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := database.Conn(ctx, r.db).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err, "find user")
	}
	return &user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return translate(database.Conn(ctx, r.db).Create(user).Error, "create user")
}

// CreateRefreshToken creates a new refresh token
func (r *UserRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return translate(database.Conn(ctx, r.db).Omit(clause.Associations).Create(token).Error, "create refresh token")
}

// FindRefreshTokenByHash finds an unrevoked, unexpired refresh token by its hash
func (r *UserRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := database.Conn(ctx, r.db).
		Where("token_hash = ? AND revoked = ? AND expires_at > ?", hash, false, time.Now().UTC()).
		Preload("User").
		First(&token).Error
	if err != nil {
		return nil, translate(err, "find refresh token")
	}
	return &token, nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked by its hash
func (r *UserRepository) RevokeRefreshTokenByHash(ctx context.Context, hash string) error {
	err := database.Conn(ctx, r.db).Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
	return translate(err, "revoke refresh token")
}
