package food

import (
	"context"
	"math"
	"time"

	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
)

// ExpiringWindow is how far ahead the expiring view looks.
const ExpiringWindow = 48 * time.Hour

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, ownerID string) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, ownerID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, itemID string, ownerID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, itemID string, req domain.UpdateFoodItemRequest, ownerID string) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, itemID string, ownerID string) error
		GetExpiringFoodItems(ctx context.Context, ownerID string) ([]domain.ExpiringFoodItemResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

// ClassifyStatus buckets an item by how close its expiry date is. Anything
// already past its expiry date is expired, even by an hour; the rounded-up
// day count is only for display.
func ClassifyStatus(expiryDate time.Time, now time.Time) entities.FoodStatus {
	switch {
	case expiryDate.Before(now):
		return entities.FoodStatusExpired
	case DaysUntilExpiry(expiryDate, now) <= 2:
		return entities.FoodStatusExpiring
	default:
		return entities.FoodStatusFresh
	}
}

// DaysUntilExpiry rounds up, so an item expiring later today counts as 1 day.
func DaysUntilExpiry(expiryDate time.Time, now time.Time) int {
	return int(math.Ceil(expiryDate.Sub(now).Hours() / 24))
}

func parseExpiryDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return t, nil
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, ownerID string) (domain.FoodItemResponse, error) {
	if req.Quantity == nil || *req.Quantity < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	now := time.Now()
	item := &entities.FoodItem{
		OwnerID:    ownerID,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   *req.Quantity,
		Unit:       req.Unit,
		AddedAt:    now,
		ExpiryDate: expiryDate,
		Status:     ClassifyStatus(expiryDate, now),
	}

	if err := s.foodRepository.CreateFoodItem(ctx, item); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(item), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, ownerID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	items, count, err := s.foodRepository.GetFoodItemsByOwner(ctx, ownerID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFoodItemResponse(item))
	}
	return res, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, itemID string, ownerID string) (domain.FoodItemResponse, error) {
	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}
	if item.OwnerID != ownerID {
		return domain.FoodItemResponse{}, domain.ErrFoodItemAccessDenied
	}
	return toFoodItemResponse(item), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, itemID string, req domain.UpdateFoodItemRequest, ownerID string) (domain.FoodItemResponse, error) {
	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}
	if item.OwnerID != ownerID {
		return domain.FoodItemResponse{}, domain.ErrFoodItemAccessDenied
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.ExpiryDate != nil {
		expiryDate, err := parseExpiryDate(*req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		item.ExpiryDate = expiryDate
		item.Status = ClassifyStatus(expiryDate, time.Now())
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, item); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(item), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, itemID string, ownerID string) error {
	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		return domain.ErrFoodItemNotFound
	}
	if item.OwnerID != ownerID {
		return domain.ErrFoodItemAccessDenied
	}
	return s.foodRepository.DeleteFoodItem(ctx, itemID)
}

func (s *foodService) GetExpiringFoodItems(ctx context.Context, ownerID string) ([]domain.ExpiringFoodItemResponse, error) {
	items, err := s.foodRepository.GetExpiringFoodItems(ctx, ownerID, ExpiringWindow)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := make([]domain.ExpiringFoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, domain.ExpiringFoodItemResponse{
			FoodItemResponse: toFoodItemResponse(item),
			DaysUntilExpiry:  DaysUntilExpiry(item.ExpiryDate, now),
		})
	}
	return res, nil
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Category:   item.Category,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		AddedAt:    item.AddedAt,
		ExpiryDate: item.ExpiryDate,
		Status:     string(item.Status),
		OwnerID:    item.OwnerID,
	}
}
