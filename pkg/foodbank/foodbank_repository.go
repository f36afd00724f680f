package foodbank

import (
	"context"

	"github.com/rotnot/rotnot-backend/entities"
	"gorm.io/gorm"
)

type (
	FoodBankRepository interface {
		CreateFoodBank(ctx context.Context, foodBank *entities.FoodBank) error
		GetFoodBankByID(ctx context.Context, id string) (*entities.FoodBank, error)
		GetActiveFoodBanks(ctx context.Context) ([]*entities.FoodBank, error)
		GetNearbyFoodBanks(ctx context.Context, lat, lng float64, radiusKm float64) ([]*entities.FoodBank, error)
	}

	foodBankRepository struct {
		db *gorm.DB
	}
)

func NewFoodBankRepository(db *gorm.DB) FoodBankRepository {
	return &foodBankRepository{db: db}
}

func (r *foodBankRepository) CreateFoodBank(ctx context.Context, foodBank *entities.FoodBank) error {
	return r.db.WithContext(ctx).Create(foodBank).Error
}

func (r *foodBankRepository) GetFoodBankByID(ctx context.Context, id string) (*entities.FoodBank, error) {
	var foodBank entities.FoodBank
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodBank).Error; err != nil {
		return nil, err
	}
	return &foodBank, nil
}

func (r *foodBankRepository) GetActiveFoodBanks(ctx context.Context) ([]*entities.FoodBank, error) {
	var foodBanks []*entities.FoodBank
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&foodBanks).Error; err != nil {
		return nil, err
	}
	return foodBanks, nil
}

func (r *foodBankRepository) GetNearbyFoodBanks(ctx context.Context, lat, lng float64, radiusKm float64) ([]*entities.FoodBank, error) {
	var foodBanks []*entities.FoodBank

	// Uses PostgreSQL's earthdistance extension; the migration installs
	// "cube" and "earthdistance". earth_box is only a coarse prefilter (its
	// corners reach past the radius), so the exact earth_distance check is
	// what enforces the bound.
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM food_banks
		WHERE is_active = true
		  AND earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		  AND earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) <= ?
		ORDER BY distance ASC
	`

	radiusMeters := radiusKm * 1000

	if err := r.db.WithContext(ctx).Raw(query, lat, lng, lat, lng, radiusMeters, lat, lng, radiusMeters).Scan(&foodBanks).Error; err != nil {
		return nil, err
	}

	return foodBanks, nil
}
