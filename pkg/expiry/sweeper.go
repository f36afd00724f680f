package expiry

import (
	"context"
	"time"

	"github.com/rotnot/rotnot-backend/entities"
	"github.com/rotnot/rotnot-backend/internal/observability"
	"github.com/rotnot/rotnot-backend/pkg/food"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SweepInterval is how often the sweeper reclassifies the registry.
const SweepInterval = 24 * time.Hour

type (
	SweepRepository interface {
		ListForSweep(ctx context.Context) ([]*entities.FoodItem, error)
		UpdateStatus(ctx context.Context, id string, status entities.FoodStatus) error
	}

	sweepRepository struct {
		db *gorm.DB
	}

	Sweeper struct {
		repository SweepRepository
	}
)

func NewSweepRepository(db *gorm.DB) SweepRepository {
	return &sweepRepository{db: db}
}

// ListForSweep returns items whose freshness can still change. Donated and
// consumed items keep their status forever.
func (r *sweepRepository) ListForSweep(ctx context.Context) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []entities.FoodStatus{
			entities.FoodStatusFresh,
			entities.FoodStatusExpiring,
			entities.FoodStatusExpired,
		}).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *sweepRepository) UpdateStatus(ctx context.Context, id string, status entities.FoodStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func NewSweeper(repository SweepRepository) *Sweeper {
	return &Sweeper{repository: repository}
}

// Sweep reclassifies every sweepable item and writes only the rows whose
// status actually changed. Returns how many items were examined and how
// many rows were written.
func (s *Sweeper) Sweep(ctx context.Context) (int, int, error) {
	items, err := s.repository.ListForSweep(ctx)
	if err != nil {
		return 0, 0, err
	}

	now := time.Now()
	updated := 0
	for _, item := range items {
		next := food.ClassifyStatus(item.ExpiryDate, now)
		if next == item.Status {
			continue
		}
		if err := s.repository.UpdateStatus(ctx, item.ID.String(), next); err != nil {
			log.WithError(err).WithField("item_id", item.ID).Warn("sweep update failed")
			continue
		}
		updated++
	}

	observability.ExpirySweepRuns.Inc()
	observability.ExpirySweepUpdates.Add(float64(updated))
	return len(items), updated, nil
}

// Start runs an immediate sweep and then one per interval until the context
// is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	run := func() {
		examined, updated, err := s.Sweep(ctx)
		if err != nil {
			log.WithError(err).Error("expiry sweep failed")
			return
		}
		log.WithFields(log.Fields{
			"examined": examined,
			"updated":  updated,
		}).Info("expiry sweep finished")
	}

	run()

	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			run()
		}
	}
}
