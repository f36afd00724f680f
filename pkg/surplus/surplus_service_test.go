package surplus

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSurplusStore struct {
	posts    map[uuid.UUID]*entities.SurplusPost
	profiles map[string]*entities.UserProfile
}

func newFakeSurplusStore() *fakeSurplusStore {
	return &fakeSurplusStore{
		posts:    map[uuid.UUID]*entities.SurplusPost{},
		profiles: map[string]*entities.UserProfile{},
	}
}

// SurplusRepository

func (s *fakeSurplusStore) CreateSurplusPost(_ context.Context, post *entities.SurplusPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	s.posts[post.ID] = post
	return nil
}

func (s *fakeSurplusStore) GetSurplusPostByID(_ context.Context, id string) (*entities.SurplusPost, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	post, ok := s.posts[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

func (s *fakeSurplusStore) GetAvailableSurplusPosts(_ context.Context) ([]*entities.SurplusPost, error) {
	var res []*entities.SurplusPost
	now := time.Now()
	for _, post := range s.posts {
		if post.Status == entities.SurplusStatusAvailable && post.ExpiresAt.After(now) {
			res = append(res, post)
		}
	}
	return res, nil
}

func (s *fakeSurplusStore) ClaimIf(_ context.Context, id uuid.UUID, claimerID string, claimedAt time.Time) (bool, error) {
	post, ok := s.posts[id]
	if !ok || post.Status != entities.SurplusStatusAvailable {
		return false, nil
	}
	post.Status = entities.SurplusStatusClaimed
	post.ClaimedBy = &claimerID
	post.ClaimedAt = &claimedAt
	return true, nil
}

func (s *fakeSurplusStore) CompleteIf(_ context.Context, id uuid.UUID, completedAt time.Time) (bool, error) {
	post, ok := s.posts[id]
	if !ok || post.Status != entities.SurplusStatusClaimed {
		return false, nil
	}
	post.Status = entities.SurplusStatusCompleted
	post.CompletedAt = &completedAt
	return true, nil
}

// user.UserRepository

func (s *fakeSurplusStore) GetByFirebaseUID(_ context.Context, firebaseUID string) (*entities.UserProfile, error) {
	profile, ok := s.profiles[firebaseUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (s *fakeSurplusStore) GetOrCreate(_ context.Context, firebaseUID string, defaults *entities.UserProfile) (*entities.UserProfile, error) {
	if profile, ok := s.profiles[firebaseUID]; ok {
		return profile, nil
	}
	defaults.FirebaseUID = firebaseUID
	s.profiles[firebaseUID] = defaults
	return defaults, nil
}

func (s *fakeSurplusStore) UpdateProfile(_ context.Context, profile *entities.UserProfile) error {
	s.profiles[profile.FirebaseUID] = profile
	return nil
}

func (s *fakeSurplusStore) addProfile(uid string, role entities.UserRole) {
	s.profiles[uid] = &entities.UserProfile{ID: uuid.New(), FirebaseUID: uid, Role: role}
}

func floatPtr(f float64) *float64 { return &f }

func postTestSurplus(t *testing.T, svc SurplusService, donorID string) domain.SurplusPost {
	t.Helper()
	res, err := svc.PostSurplus(context.Background(), domain.PostSurplusRequest{
		Title:     "Leftover dal bhat",
		Quantity:  floatPtr(10),
		Unit:      "plate",
		ExpiresAt: time.Now().Add(6 * time.Hour).Format(time.RFC3339),
	}, donorID)
	require.NoError(t, err)
	return res
}

func TestPostSurplusRejectsPastExpiry(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)

	_, err := svc.PostSurplus(context.Background(), domain.PostSurplusRequest{
		Title:     "Old rice",
		Quantity:  floatPtr(2),
		Unit:      "kg",
		ExpiresAt: time.Now().Add(-time.Hour).Format(time.RFC3339),
	}, "donor-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClaimSurplusRequiresNGORole(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("regular", entities.RoleUser)

	post := postTestSurplus(t, svc, "donor-1")

	_, err := svc.ClaimSurplus(context.Background(), post.ID, "regular")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClaimSurplusRejectsOwnPost(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("donor-ngo", entities.RoleNGO)

	post := postTestSurplus(t, svc, "donor-ngo")

	_, err := svc.ClaimSurplus(context.Background(), post.ID, "donor-ngo")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClaimSurplusOnlyOneWinner(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("ngo-1", entities.RoleNGO)
	store.addProfile("ngo-2", entities.RoleNGO)

	post := postTestSurplus(t, svc, "donor-1")

	res, err := svc.ClaimSurplus(context.Background(), post.ID, "ngo-1")
	require.NoError(t, err)
	assert.Equal(t, string(entities.SurplusStatusClaimed), res.Status)
	assert.Equal(t, "ngo-1", res.ClaimedBy)

	_, err = svc.ClaimSurplus(context.Background(), post.ID, "ngo-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClaimSurplusExpired(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("ngo-1", entities.RoleNGO)

	post := &entities.SurplusPost{
		ID:        uuid.New(),
		DonorID:   "donor-1",
		Title:     "Stale bread",
		Quantity:  3,
		Unit:      "loaf",
		ExpiresAt: time.Now().Add(-time.Hour),
		Status:    entities.SurplusStatusAvailable,
	}
	store.posts[post.ID] = post

	_, err := svc.ClaimSurplus(context.Background(), post.ID.String(), "ngo-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCompleteSurplusByClaimant(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("ngo-1", entities.RoleNGO)

	post := postTestSurplus(t, svc, "donor-1")
	_, err := svc.ClaimSurplus(context.Background(), post.ID, "ngo-1")
	require.NoError(t, err)

	require.NoError(t, svc.CompleteSurplus(context.Background(), post.ID, "ngo-1"))

	stored := store.posts[uuid.MustParse(post.ID)]
	assert.Equal(t, entities.SurplusStatusCompleted, stored.Status)
	assert.NotNil(t, stored.CompletedAt)
}

func TestCompleteSurplusByStrangerForbidden(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("ngo-1", entities.RoleNGO)

	post := postTestSurplus(t, svc, "donor-1")
	_, err := svc.ClaimSurplus(context.Background(), post.ID, "ngo-1")
	require.NoError(t, err)

	err = svc.CompleteSurplus(context.Background(), post.ID, "someone-else")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompleteSurplusBeforeClaimConflicts(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)

	post := postTestSurplus(t, svc, "donor-1")

	err := svc.CompleteSurplus(context.Background(), post.ID, "donor-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGetAvailableSurplusSkipsExpiredAndClaimed(t *testing.T) {
	store := newFakeSurplusStore()
	svc := NewSurplusService(store, store)
	store.addProfile("ngo-1", entities.RoleNGO)

	fresh := postTestSurplus(t, svc, "donor-1")
	claimed := postTestSurplus(t, svc, "donor-2")
	_, err := svc.ClaimSurplus(context.Background(), claimed.ID, "ngo-1")
	require.NoError(t, err)

	posts, err := svc.GetAvailableSurplus(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, fresh.ID, posts[0].ID)
}
