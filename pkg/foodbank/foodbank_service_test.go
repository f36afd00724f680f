package foodbank

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

type fakeFoodBankRepo struct {
	foodBanks []*entities.FoodBank
}

func (r *fakeFoodBankRepo) CreateFoodBank(_ context.Context, foodBank *entities.FoodBank) error {
	if foodBank.ID == uuid.Nil {
		foodBank.ID = uuid.New()
	}
	r.foodBanks = append(r.foodBanks, foodBank)
	return nil
}

func (r *fakeFoodBankRepo) GetFoodBankByID(_ context.Context, id string) (*entities.FoodBank, error) {
	for _, fb := range r.foodBanks {
		if fb.ID.String() == id {
			return fb, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFoodBankRepo) GetActiveFoodBanks(_ context.Context) ([]*entities.FoodBank, error) {
	var res []*entities.FoodBank
	for _, fb := range r.foodBanks {
		if fb.IsActive {
			res = append(res, fb)
		}
	}
	return res, nil
}

func (r *fakeFoodBankRepo) GetNearbyFoodBanks(_ context.Context, lat, lng float64, radiusKm float64) ([]*entities.FoodBank, error) {
	var res []*entities.FoodBank
	for _, fb := range r.foodBanks {
		if !fb.IsActive {
			continue
		}
		if HaversineKm(lat, lng, fb.Latitude, fb.Longitude) <= radiusKm {
			res = append(res, fb)
		}
	}
	return res, nil
}

func TestHaversineKm(t *testing.T) {
	// Kathmandu Durbar Square to Patan Durbar Square is about 5 km
	got := HaversineKm(27.7172, 85.3240, 27.6727, 85.3286)
	assert.InDelta(t, 5.0, got, 0.2)

	// zero distance
	assert.InDelta(t, 0, HaversineKm(27.7, 85.3, 27.7, 85.3), 0.001)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "5.0 km away", FormatDistance(5.0))
	assert.Equal(t, "0.4 km away", FormatDistance(0.42))
}

func TestGetNearbyFoodBanksAddsDistance(t *testing.T) {
	repo := &fakeFoodBankRepo{foodBanks: []*entities.FoodBank{
		{
			ID:        uuid.New(),
			Name:      "Community Kitchen",
			Type:      entities.FoodBankTypeCommunity,
			Latitude:  27.7215,
			Longitude: 85.3620,
			IsActive:  true,
		},
		{
			ID:        uuid.New(),
			Name:      "Closed Shelter",
			Type:      entities.FoodBankTypeShelter,
			Latitude:  27.7100,
			Longitude: 85.3200,
			IsActive:  false,
		},
	}}
	svc := NewFoodBankService(repo)

	res, err := svc.GetNearbyFoodBanks(context.Background(), domain.NearbyFoodBanksRequest{
		Latitude:  27.7045,
		Longitude: 85.3076,
	})
	require.NoError(t, err)
	require.Len(t, res, 1)

	assert.Equal(t, "Community Kitchen", res[0].Name)
	assert.Contains(t, res[0].Distance, "km away")
}

// coarseFoodBankRepo ignores the radius entirely, the way a bounding-box
// prefilter can let through points past it.
type coarseFoodBankRepo struct{ fakeFoodBankRepo }

func (r *coarseFoodBankRepo) GetNearbyFoodBanks(_ context.Context, _, _ float64, _ float64) ([]*entities.FoodBank, error) {
	return r.foodBanks, nil
}

func TestGetNearbyFoodBanksEnforcesRadius(t *testing.T) {
	repo := &coarseFoodBankRepo{fakeFoodBankRepo{foodBanks: []*entities.FoodBank{
		{
			ID:        uuid.New(),
			Name:      "Near Kitchen",
			Type:      entities.FoodBankTypeCommunity,
			Latitude:  27.7215,
			Longitude: 85.3620,
			IsActive:  true,
		},
		{
			ID:        uuid.New(),
			Name:      "Far Kitchen",
			Type:      entities.FoodBankTypeCommunity,
			Latitude:  27.8300,
			Longitude: 85.4300,
			IsActive:  true,
		},
	}}}
	svc := NewFoodBankService(repo)

	// default radius is 10 km; Far Kitchen sits ~14 km out
	res, err := svc.GetNearbyFoodBanks(context.Background(), domain.NearbyFoodBanksRequest{
		Latitude:  27.7045,
		Longitude: 85.3076,
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Near Kitchen", res[0].Name)
}

func TestCreateFoodBankRequiresCoordinates(t *testing.T) {
	svc := NewFoodBankService(&fakeFoodBankRepo{})

	_, err := svc.CreateFoodBank(context.Background(), domain.CreateFoodBankRequest{
		Name:    "No Coords",
		Type:    "community",
		Address: "somewhere",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateFoodBankDefaultsActive(t *testing.T) {
	repo := &fakeFoodBankRepo{}
	svc := NewFoodBankService(repo)

	lat, lng := 27.7, 85.3
	res, err := svc.CreateFoodBank(context.Background(), domain.CreateFoodBankRequest{
		Name:      "New Bank",
		Type:      "charity",
		Address:   "main street",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	all, err := svc.GetAllFoodBanks(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
