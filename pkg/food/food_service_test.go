package food

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

type fakeFoodRepo struct {
	items map[uuid.UUID]*entities.FoodItem
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{items: map[uuid.UUID]*entities.FoodItem{}}
}

func (r *fakeFoodRepo) CreateFoodItem(_ context.Context, item *entities.FoodItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeFoodRepo) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := r.items[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeFoodRepo) GetFoodItemsByOwner(_ context.Context, ownerID string, status string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var res []*entities.FoodItem
	for _, item := range r.items {
		if item.OwnerID != ownerID {
			continue
		}
		if status != "" && status != "all" && string(item.Status) != status {
			continue
		}
		clone := *item
		res = append(res, &clone)
	}
	return res, int64(len(res)), nil
}

func (r *fakeFoodRepo) GetFoodItemsByIDs(_ context.Context, ownerID string, ids []string) ([]*entities.FoodItem, error) {
	var res []*entities.FoodItem
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		if item, ok := r.items[parsed]; ok && item.OwnerID == ownerID {
			clone := *item
			res = append(res, &clone)
		}
	}
	return res, nil
}

func (r *fakeFoodRepo) UpdateFoodItem(_ context.Context, item *entities.FoodItem) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeFoodRepo) DeleteFoodItem(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.items, parsed)
	return nil
}

func (r *fakeFoodRepo) GetExpiringFoodItems(_ context.Context, ownerID string, within time.Duration) ([]*entities.FoodItem, error) {
	now := time.Now()
	threshold := now.Add(within)
	var res []*entities.FoodItem
	for _, item := range r.items {
		if item.OwnerID != ownerID {
			continue
		}
		if item.ExpiryDate.Before(now) || item.ExpiryDate.After(threshold) {
			continue
		}
		clone := *item
		res = append(res, &clone)
	}
	return res, nil
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestClassifyStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   entities.FoodStatus
	}{
		{"already expired", now.Add(-24 * time.Hour), entities.FoodStatusExpired},
		{"expired earlier today", now.Add(-12 * time.Hour), entities.FoodStatusExpired},
		{"expired a minute ago", now.Add(-time.Minute), entities.FoodStatusExpired},
		{"expires later today", now.Add(6 * time.Hour), entities.FoodStatusExpiring},
		{"expires in two days", now.Add(47 * time.Hour), entities.FoodStatusExpiring},
		{"expires next week", now.Add(7 * 24 * time.Hour), entities.FoodStatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.expiry, now))
		})
	}
}

func TestDaysUntilExpiryRoundsUp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntilExpiry(now.Add(2*time.Hour), now))
	assert.Equal(t, 2, DaysUntilExpiry(now.Add(25*time.Hour), now))
	assert.Equal(t, 0, DaysUntilExpiry(now, now))
}

func TestAddFoodItemDerivesStatus(t *testing.T) {
	repo := newFakeFoodRepo()
	svc := NewFoodService(repo)

	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Milk",
		Category:   "dairy",
		Quantity:   floatPtr(1),
		Unit:       "liter",
		ExpiryDate: time.Now().Add(12 * time.Hour).Format(time.RFC3339),
	}, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, string(entities.FoodStatusExpiring), res.Status)
	assert.Equal(t, "owner-1", res.OwnerID)
	assert.NotEmpty(t, res.ID)
}

func TestAddFoodItemRejectsNegativeQuantity(t *testing.T) {
	svc := NewFoodService(newFakeFoodRepo())

	_, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Rice",
		Category:   "grain",
		Quantity:   floatPtr(-3),
		Unit:       "kg",
		ExpiryDate: "2030-01-01",
	}, "owner-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddFoodItemRejectsBadExpiryDate(t *testing.T) {
	svc := NewFoodService(newFakeFoodRepo())

	_, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Rice",
		Category:   "grain",
		Quantity:   floatPtr(1),
		Unit:       "kg",
		ExpiryDate: "not-a-date",
	}, "owner-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateFoodItemEnforcesOwnership(t *testing.T) {
	repo := newFakeFoodRepo()
	svc := NewFoodService(repo)

	created, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Bread",
		Category:   "bakery",
		Quantity:   floatPtr(2),
		Unit:       "loaf",
		ExpiryDate: "2030-01-01",
	}, "owner-1")
	require.NoError(t, err)

	_, err = svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{
		Name: strPtr("Sourdough"),
	}, "owner-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{
		Name: strPtr("Sourdough"),
	}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", res.Name)
	assert.Equal(t, 2.0, res.Quantity)
}

func TestUpdateFoodItemReclassifiesOnNewExpiry(t *testing.T) {
	repo := newFakeFoodRepo()
	svc := NewFoodService(repo)

	created, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Yogurt",
		Category:   "dairy",
		Quantity:   floatPtr(4),
		Unit:       "cup",
		ExpiryDate: "2030-01-01",
	}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, string(entities.FoodStatusFresh), created.Status)

	soon := time.Now().Add(10 * time.Hour).Format(time.RFC3339)
	res, err := svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{
		ExpiryDate: &soon,
	}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, string(entities.FoodStatusExpiring), res.Status)
}

func TestDeleteFoodItemNotFound(t *testing.T) {
	svc := NewFoodService(newFakeFoodRepo())

	err := svc.DeleteFoodItem(context.Background(), uuid.NewString(), "owner-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetExpiringFoodItems(t *testing.T) {
	repo := newFakeFoodRepo()
	svc := NewFoodService(repo)

	_, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Spinach",
		Category:   "produce",
		Quantity:   floatPtr(1),
		Unit:       "bunch",
		ExpiryDate: time.Now().Add(30 * time.Hour).Format(time.RFC3339),
	}, "owner-1")
	require.NoError(t, err)

	_, err = svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Canned beans",
		Category:   "pantry",
		Quantity:   floatPtr(6),
		Unit:       "can",
		ExpiryDate: "2030-01-01",
	}, "owner-1")
	require.NoError(t, err)

	items, err := svc.GetExpiringFoodItems(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Spinach", items[0].Name)
	assert.Equal(t, 2, items[0].DaysUntilExpiry)
}
