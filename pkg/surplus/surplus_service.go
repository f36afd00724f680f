package surplus

import (
	"context"
	"time"

	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
	"github.com/rotnot/rotnot-backend/internal/observability"
	"github.com/rotnot/rotnot-backend/pkg/user"
)

type (
	SurplusService interface {
		PostSurplus(ctx context.Context, req domain.PostSurplusRequest, donorID string) (domain.SurplusPost, error)
		GetAvailableSurplus(ctx context.Context) ([]domain.SurplusPost, error)
		ClaimSurplus(ctx context.Context, postID string, claimerUID string) (domain.SurplusPost, error)
		CompleteSurplus(ctx context.Context, postID string, userID string) error
	}

	surplusService struct {
		surplusRepository SurplusRepository
		userRepository    user.UserRepository
	}
)

func NewSurplusService(surplusRepository SurplusRepository, userRepository user.UserRepository) SurplusService {
	return &surplusService{
		surplusRepository: surplusRepository,
		userRepository:    userRepository,
	}
}

func (s *surplusService) PostSurplus(ctx context.Context, req domain.PostSurplusRequest, donorID string) (domain.SurplusPost, error) {
	if req.Quantity == nil || *req.Quantity <= 0 {
		return domain.SurplusPost{}, domain.ErrInvalidQuantity
	}

	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		return domain.SurplusPost{}, domain.ErrInvalidExpiryDate
	}
	if expiresAt.Before(time.Now()) {
		return domain.SurplusPost{}, domain.ErrInvalidExpiryDate
	}

	post := &entities.SurplusPost{
		DonorID:     donorID,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Unit:        req.Unit,
		ExpiresAt:   expiresAt,
		Status:      entities.SurplusStatusAvailable,
	}

	if err := s.surplusRepository.CreateSurplusPost(ctx, post); err != nil {
		return domain.SurplusPost{}, err
	}

	return toSurplusPost(post), nil
}

func (s *surplusService) GetAvailableSurplus(ctx context.Context) ([]domain.SurplusPost, error) {
	posts, err := s.surplusRepository.GetAvailableSurplusPosts(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.SurplusPost, 0, len(posts))
	for _, post := range posts {
		res = append(res, toSurplusPost(post))
	}
	return res, nil
}

func (s *surplusService) ClaimSurplus(ctx context.Context, postID string, claimerUID string) (domain.SurplusPost, error) {
	profile, err := s.userRepository.GetByFirebaseUID(ctx, claimerUID)
	if err != nil {
		return domain.SurplusPost{}, domain.ErrUserNotFound
	}
	if profile.Role != entities.RoleNGO {
		return domain.SurplusPost{}, domain.ErrNotNGO
	}

	post, err := s.surplusRepository.GetSurplusPostByID(ctx, postID)
	if err != nil {
		return domain.SurplusPost{}, domain.ErrSurplusNotFound
	}
	if post.DonorID == claimerUID {
		return domain.SurplusPost{}, domain.ErrSurplusOwnClaim
	}
	if post.ExpiresAt.Before(time.Now()) {
		return domain.SurplusPost{}, domain.ErrSurplusExpired
	}

	claimedAt := time.Now()
	ok, err := s.surplusRepository.ClaimIf(ctx, post.ID, claimerUID, claimedAt)
	if err != nil {
		return domain.SurplusPost{}, err
	}
	if !ok {
		return domain.SurplusPost{}, domain.ErrSurplusNotAvailable
	}

	observability.SurplusClaims.Inc()

	post.Status = entities.SurplusStatusClaimed
	post.ClaimedBy = &claimerUID
	post.ClaimedAt = &claimedAt
	return toSurplusPost(post), nil
}

// CompleteSurplus may be called by either side of the handover.
func (s *surplusService) CompleteSurplus(ctx context.Context, postID string, userID string) error {
	post, err := s.surplusRepository.GetSurplusPostByID(ctx, postID)
	if err != nil {
		return domain.ErrSurplusNotFound
	}
	if post.Status == entities.SurplusStatusAvailable {
		return domain.ErrSurplusNotClaimed
	}

	isDonor := post.DonorID == userID
	isClaimant := post.ClaimedBy != nil && *post.ClaimedBy == userID
	if !isDonor && !isClaimant {
		return domain.ErrSurplusNotClaimant
	}

	ok, err := s.surplusRepository.CompleteIf(ctx, post.ID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSurplusNotClaimed
	}
	return nil
}

func toSurplusPost(post *entities.SurplusPost) domain.SurplusPost {
	res := domain.SurplusPost{
		ID:          post.ID.String(),
		DonorID:     post.DonorID,
		Title:       post.Title,
		Description: post.Description,
		Quantity:    post.Quantity,
		Unit:        post.Unit,
		ExpiresAt:   post.ExpiresAt,
		Status:      string(post.Status),
		ClaimedAt:   post.ClaimedAt,
		CompletedAt: post.CompletedAt,
		CreatedAt:   post.CreatedAt,
	}
	if post.ClaimedBy != nil {
		res.ClaimedBy = *post.ClaimedBy
	}
	return res
}
