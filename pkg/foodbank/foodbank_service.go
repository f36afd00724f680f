package foodbank

import (
	"context"
	"fmt"
	"math"

	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
)

// DefaultRadiusMeters bounds the nearby search when the client does not
// ask for a specific radius.
const DefaultRadiusMeters = 10000.0

const earthRadiusKm = 6371.0

type (
	FoodBankService interface {
		GetNearbyFoodBanks(ctx context.Context, req domain.NearbyFoodBanksRequest) ([]domain.FoodBank, error)
		GetAllFoodBanks(ctx context.Context) ([]domain.FoodBank, error)
		CreateFoodBank(ctx context.Context, req domain.CreateFoodBankRequest) (domain.FoodBank, error)
	}

	foodBankService struct {
		foodBankRepository FoodBankRepository
	}
)

func NewFoodBankService(foodBankRepository FoodBankRepository) FoodBankService {
	return &foodBankService{foodBankRepository: foodBankRepository}
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders a distance the way the mobile clients display it.
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km away", km)
}

func (s *foodBankService) GetNearbyFoodBanks(ctx context.Context, req domain.NearbyFoodBanksRequest) ([]domain.FoodBank, error) {
	radiusMeters := req.MaxDistance
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	foodBanks, err := s.foodBankRepository.GetNearbyFoodBanks(ctx, req.Latitude, req.Longitude, radiusMeters/1000)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodBank, 0, len(foodBanks))
	for _, fb := range foodBanks {
		km := HaversineKm(req.Latitude, req.Longitude, fb.Latitude, fb.Longitude)
		// the store's box prefilter can let through points just past the
		// radius; re-check the bound before displaying
		if km > radiusMeters/1000 {
			continue
		}
		dto := toFoodBank(fb)
		dto.Distance = FormatDistance(km)
		res = append(res, dto)
	}
	return res, nil
}

func (s *foodBankService) GetAllFoodBanks(ctx context.Context) ([]domain.FoodBank, error) {
	foodBanks, err := s.foodBankRepository.GetActiveFoodBanks(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodBank, 0, len(foodBanks))
	for _, fb := range foodBanks {
		res = append(res, toFoodBank(fb))
	}
	return res, nil
}

func (s *foodBankService) CreateFoodBank(ctx context.Context, req domain.CreateFoodBankRequest) (domain.FoodBank, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return domain.FoodBank{}, domain.ErrInvalidCoordinates
	}

	foodBank := &entities.FoodBank{
		Name:      req.Name,
		Type:      entities.FoodBankType(req.Type),
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Phone:     req.Phone,
		OpenUntil: req.OpenUntil,
		IsActive:  true,
	}

	if err := s.foodBankRepository.CreateFoodBank(ctx, foodBank); err != nil {
		return domain.FoodBank{}, err
	}

	return toFoodBank(foodBank), nil
}

func toFoodBank(fb *entities.FoodBank) domain.FoodBank {
	return domain.FoodBank{
		ID:        fb.ID.String(),
		Name:      fb.Name,
		Type:      string(fb.Type),
		Address:   fb.Address,
		Latitude:  fb.Latitude,
		Longitude: fb.Longitude,
		Phone:     fb.Phone,
		OpenUntil: fb.OpenUntil,
	}
}
