package user

import (
	"context"

	"github.com/rotnot/rotnot-backend/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		GetByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.UserProfile, error)
		GetOrCreate(ctx context.Context, firebaseUID string, defaults *entities.UserProfile) (*entities.UserProfile, error)
		UpdateProfile(ctx context.Context, profile *entities.UserProfile) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).
		Preload("FoodBank").
		Where("firebase_uid = ?", firebaseUID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreate inserts the default profile unless a row for the subject
// already exists, then reads whichever row won. Safe under concurrent
// first requests from the same user.
func (r *userRepository) GetOrCreate(ctx context.Context, firebaseUID string, defaults *entities.UserProfile) (*entities.UserProfile, error) {
	defaults.FirebaseUID = firebaseUID

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "firebase_uid"}},
			DoNothing: true,
		}).
		Create(defaults).Error; err != nil {
		return nil, err
	}

	return r.GetByFirebaseUID(ctx, firebaseUID)
}

func (r *userRepository) UpdateProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
