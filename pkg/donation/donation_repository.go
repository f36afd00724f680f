package donation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonationWithItems(ctx context.Context, donation *entities.Donation, items []*entities.FoodItem) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonationsByDonor(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error)
		GetPendingByFoodBank(ctx context.Context, foodBankID uuid.UUID) ([]*entities.Donation, error)
		UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entities.DonationStatus, updates map[string]any) (bool, error)
		TransitionAndRestore(ctx context.Context, id uuid.UUID, from []entities.DonationStatus, to entities.DonationStatus) error
		SetDismissed(ctx context.Context, id uuid.UUID) error
		GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardRow, error)
	}

	donationRepository struct {
		db *gorm.DB
	}

	LeaderboardRow struct {
		DonorID        string
		Name           string
		Role           string
		TotalDonations int
		TotalItems     float64
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// CreateDonationWithItems writes the donation and its item snapshots, moves
// the source food items into donated_foods and removes them from the active
// registry, all in one transaction.
func (r *donationRepository) CreateDonationWithItems(ctx context.Context, donation *entities.Donation, items []*entities.FoodItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}

		now := time.Now()
		ids := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			donated := &entities.DonatedFood{
				Name:            item.Name,
				Category:        item.Category,
				Quantity:        item.Quantity,
				Unit:            item.Unit,
				AddedAt:         item.AddedAt,
				ExpiryDate:      item.ExpiryDate,
				DonatedAt:       now,
				OriginalOwnerID: item.OwnerID,
				DonationID:      donation.ID,
				FoodBankID:      donation.FoodBankID,
			}
			if err := tx.Create(donated).Error; err != nil {
				return err
			}
			ids = append(ids, item.ID)
		}

		return tx.Where("id IN ?", ids).Delete(&entities.FoodItem{}).Error
	})
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("FoodBank").
		Preload("Items").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonationsByDonor(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ? AND dismissed_by_donor = ?", donorID, false)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("FoodBank").
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetPendingByFoodBank(ctx context.Context, foodBankID uuid.UUID) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("food_bank_id = ? AND status = ?", foodBankID, entities.DonationStatusPending).
		Order("created_at ASC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateStatusIf performs a compare-and-swap on the status column. The false
// return means another request already moved the donation out of `from`.
func (r *donationRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entities.DonationStatus, updates map[string]any) (bool, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["status"] = to

	res := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// TransitionAndRestore moves the donation into a terminal status and puts
// every donated item back into the donor's active registry. The status check
// and the restore commit or roll back together.
func (r *donationRepository) TransitionAndRestore(ctx context.Context, id uuid.UUID, from []entities.DonationStatus, to entities.DonationStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Donation{}).
			Where("id = ? AND status IN ?", id, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidTransition
		}

		var donated []*entities.DonatedFood
		if err := tx.Where("donation_id = ?", id).Find(&donated).Error; err != nil {
			return err
		}

		for _, df := range donated {
			item := &entities.FoodItem{
				OwnerID:    df.OriginalOwnerID,
				Name:       df.Name,
				Category:   df.Category,
				Quantity:   df.Quantity,
				Unit:       df.Unit,
				AddedAt:    df.AddedAt,
				ExpiryDate: df.ExpiryDate,
				// restored items come back as fresh; the daily sweep
				// reclassifies anything that went stale in the meantime
				Status: entities.FoodStatusFresh,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}

		return tx.Where("donation_id = ?", id).Delete(&entities.DonatedFood{}).Error
	})
}

func (r *donationRepository) SetDismissed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Update("dismissed_by_donor", true).Error
}

func (r *donationRepository) GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardRow, error) {
	var rows []*LeaderboardRow

	query := `
		SELECT d.donor_id,
		       COALESCE(up.name, '') AS name,
		       COALESCE(up.role, '') AS role,
		       COUNT(DISTINCT d.id) AS total_donations,
		       COALESCE(SUM(di.quantity), 0) AS total_items
		FROM donations d
		JOIN donation_items di ON di.donation_id = d.id
		LEFT JOIN user_profiles up ON up.firebase_uid = d.donor_id
		WHERE d.status IN ('accepted', 'picked_up', 'completed')
		GROUP BY d.donor_id, up.name, up.role
		ORDER BY total_items DESC
		LIMIT ?
	`

	if err := r.db.WithContext(ctx).Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
