package food

import (
	"context"
	"time"

	"github.com/rotnot/rotnot-backend/entities"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFoodItem(ctx context.Context, item *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemsByOwner(ctx context.Context, ownerID string, status string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetFoodItemsByIDs(ctx context.Context, ownerID string, ids []string) ([]*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetExpiringFoodItems(ctx context.Context, ownerID string, within time.Duration) ([]*entities.FoodItem, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) GetFoodItemsByOwner(ctx context.Context, ownerID string, status string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Where("owner_id = ?", ownerID)
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("added_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *foodRepository) GetFoodItemsByIDs(ctx context.Context, ownerID string, ids []string) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetExpiringFoodItems(ctx context.Context, ownerID string, within time.Duration) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem

	now := time.Now()
	threshold := now.Add(within)

	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND expiry_date >= ? AND expiry_date <= ?", ownerID, now, threshold).
		Order("expiry_date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}
