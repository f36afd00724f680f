package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	profiles map[string]*entities.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{profiles: map[string]*entities.UserProfile{}}
}

func (r *fakeUserRepo) GetByFirebaseUID(_ context.Context, firebaseUID string) (*entities.UserProfile, error) {
	profile, ok := r.profiles[firebaseUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *fakeUserRepo) GetOrCreate(_ context.Context, firebaseUID string, defaults *entities.UserProfile) (*entities.UserProfile, error) {
	if profile, ok := r.profiles[firebaseUID]; ok {
		return profile, nil
	}
	defaults.ID = uuid.New()
	defaults.FirebaseUID = firebaseUID
	r.profiles[firebaseUID] = defaults
	return defaults, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, profile *entities.UserProfile) error {
	r.profiles[profile.FirebaseUID] = profile
	return nil
}

func TestGetOrCreateProfileIsLazy(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	profile, err := svc.GetOrCreateProfile(context.Background(), "uid-1", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleUser, profile.Role)
	assert.Equal(t, "a@example.com", profile.Email)

	// second call returns the same row, defaults do not overwrite
	profile.Name = "Alice"
	again, err := svc.GetOrCreateProfile(context.Background(), "uid-1", "")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)
}

func TestMeUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpsertProfileUpdatesFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	foodBankID := uuid.NewString()
	res, err := svc.UpsertProfile(context.Background(), "uid-1", domain.UpsertProfileRequest{
		Name:       "Bob",
		Role:       "hostel",
		Phone:      "98000000",
		FoodBankID: &foodBankID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bob", res.Name)
	assert.Equal(t, "hostel", res.Role)
	assert.Equal(t, foodBankID, res.FoodBankID)
}

func TestUpsertProfileRejectsBadFoodBankID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	bad := "not-a-uuid"
	_, err := svc.UpsertProfile(context.Background(), "uid-1", domain.UpsertProfileRequest{
		FoodBankID: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
