package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
)

type (
	UserService interface {
		GetOrCreateProfile(ctx context.Context, firebaseUID string, email string) (*entities.UserProfile, error)
		Me(ctx context.Context, firebaseUID string) (domain.UserProfile, error)
		UpsertProfile(ctx context.Context, firebaseUID string, req domain.UpsertProfileRequest) (domain.UserProfile, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetOrCreateProfile(ctx context.Context, firebaseUID string, email string) (*entities.UserProfile, error) {
	defaults := &entities.UserProfile{
		Role:  entities.RoleUser,
		Email: email,
	}
	return s.userRepository.GetOrCreate(ctx, firebaseUID, defaults)
}

func (s *userService) Me(ctx context.Context, firebaseUID string) (domain.UserProfile, error) {
	profile, err := s.userRepository.GetByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return domain.UserProfile{}, domain.ErrUserNotFound
	}
	return toUserProfile(profile), nil
}

func (s *userService) UpsertProfile(ctx context.Context, firebaseUID string, req domain.UpsertProfileRequest) (domain.UserProfile, error) {
	profile, err := s.userRepository.GetOrCreate(ctx, firebaseUID, &entities.UserProfile{Role: entities.RoleUser})
	if err != nil {
		return domain.UserProfile{}, err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Role != "" {
		profile.Role = entities.UserRole(req.Role)
	}
	if req.FoodBankID != nil {
		foodBankID, err := uuid.Parse(*req.FoodBankID)
		if err != nil {
			return domain.UserProfile{}, domain.ErrFoodBankNotFound
		}
		profile.FoodBankID = &foodBankID
	}

	if err := s.userRepository.UpdateProfile(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}

	return toUserProfile(profile), nil
}

func toUserProfile(profile *entities.UserProfile) domain.UserProfile {
	res := domain.UserProfile{
		ID:        profile.FirebaseUID,
		Role:      string(profile.Role),
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		CreatedAt: profile.CreatedAt,
	}
	if profile.FoodBankID != nil {
		res.FoodBankID = profile.FoodBankID.String()
	}
	return res
}
