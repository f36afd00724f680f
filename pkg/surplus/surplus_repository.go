package surplus

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotnot/rotnot-backend/entities"
	"gorm.io/gorm"
)

type (
	SurplusRepository interface {
		CreateSurplusPost(ctx context.Context, post *entities.SurplusPost) error
		GetSurplusPostByID(ctx context.Context, id string) (*entities.SurplusPost, error)
		GetAvailableSurplusPosts(ctx context.Context) ([]*entities.SurplusPost, error)
		ClaimIf(ctx context.Context, id uuid.UUID, claimerID string, claimedAt time.Time) (bool, error)
		CompleteIf(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error)
	}

	surplusRepository struct {
		db *gorm.DB
	}
)

func NewSurplusRepository(db *gorm.DB) SurplusRepository {
	return &surplusRepository{db: db}
}

func (r *surplusRepository) CreateSurplusPost(ctx context.Context, post *entities.SurplusPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *surplusRepository) GetSurplusPostByID(ctx context.Context, id string) (*entities.SurplusPost, error) {
	var post entities.SurplusPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *surplusRepository) GetAvailableSurplusPosts(ctx context.Context) ([]*entities.SurplusPost, error) {
	var posts []*entities.SurplusPost
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at > ?", entities.SurplusStatusAvailable, time.Now()).
		Order("expires_at ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ClaimIf claims the post only while it is still available, so two NGOs
// racing for the same post cannot both win.
func (r *surplusRepository) ClaimIf(ctx context.Context, id uuid.UUID, claimerID string, claimedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.SurplusPost{}).
		Where("id = ? AND status = ?", id, entities.SurplusStatusAvailable).
		Updates(map[string]any{
			"status":     entities.SurplusStatusClaimed,
			"claimed_by": claimerID,
			"claimed_at": claimedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *surplusRepository) CompleteIf(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.SurplusPost{}).
		Where("id = ? AND status = ?", id, entities.SurplusStatusClaimed).
		Updates(map[string]any{
			"status":       entities.SurplusStatusCompleted,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
