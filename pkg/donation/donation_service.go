package donation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/entities"
	"github.com/rotnot/rotnot-backend/internal/observability"
	"github.com/rotnot/rotnot-backend/internal/utils/mailing"
	"github.com/rotnot/rotnot-backend/pkg/food"
	"github.com/rotnot/rotnot-backend/pkg/user"
	log "github.com/sirupsen/logrus"
)

// PickupLeadTime is how far ahead pickup is scheduled when a food bank
// accepts a donation.
const PickupLeadTime = 2 * time.Hour

const leaderboardLimit = 100

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (domain.Donation, error)
		GetUserDonations(ctx context.Context, donorID string, page, limit int) ([]domain.Donation, int64, error)
		GetDonation(ctx context.Context, donationID string, userID string) (domain.Donation, error)
		AcceptDonation(ctx context.Context, donationID string, staffUID string) (domain.Donation, error)
		DeclineDonation(ctx context.Context, donationID string, staffUID string) error
		CancelDonation(ctx context.Context, donationID string, donorID string) error
		UpdateDonationStatus(ctx context.Context, donationID string, donorID string, status string) error
		DismissDonation(ctx context.Context, donationID string, donorID string) error
		GetPendingDonations(ctx context.Context, staffUID string) ([]domain.Donation, error)
		GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	}

	donationService struct {
		donationRepository DonationRepository
		foodRepository     food.FoodRepository
		userRepository     user.UserRepository
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		foodRepository:     foodRepository,
		userRepository:     userRepository,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (domain.Donation, error) {
	if req.FoodBankID == "" || len(req.FoodItems) == 0 {
		return domain.Donation{}, domain.ErrEmptyDonation
	}

	foodBankID, err := uuid.Parse(req.FoodBankID)
	if err != nil {
		return domain.Donation{}, domain.ErrFoodBankNotFound
	}

	ids := make([]string, 0, len(req.FoodItems))
	for _, fi := range req.FoodItems {
		ids = append(ids, fi.FoodItemID)
	}

	items, err := s.foodRepository.GetFoodItemsByIDs(ctx, donorID, ids)
	if err != nil {
		return domain.Donation{}, err
	}
	if len(items) != len(ids) {
		return domain.Donation{}, domain.ErrItemsNotOwned
	}

	donation := &entities.Donation{
		DonorID:    donorID,
		FoodBankID: foodBankID,
		Status:     entities.DonationStatusPending,
		Notes:      req.Notes,
	}
	for _, item := range items {
		donation.Items = append(donation.Items, &entities.DonationItem{
			FoodItemID: item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
		})
	}

	if err := s.donationRepository.CreateDonationWithItems(ctx, donation, items); err != nil {
		return domain.Donation{}, err
	}

	observability.DonationsCreated.Inc()
	return toDonation(donation), nil
}

func (s *donationService) GetUserDonations(ctx context.Context, donorID string, page, limit int) ([]domain.Donation, int64, error) {
	donations, count, err := s.donationRepository.GetDonationsByDonor(ctx, donorID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Donation, 0, len(donations))
	for _, d := range donations {
		res = append(res, toDonation(d))
	}
	return res, count, nil
}

func (s *donationService) GetDonation(ctx context.Context, donationID string, userID string) (domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		return domain.Donation{}, domain.ErrDonationNotFound
	}

	if donation.DonorID != userID {
		// not the donor, allow staff of the receiving food bank
		profile, err := s.userRepository.GetByFirebaseUID(ctx, userID)
		if err != nil || profile.FoodBankID == nil || *profile.FoodBankID != donation.FoodBankID {
			return domain.Donation{}, domain.ErrDonationAccessDenied
		}
	}

	return toDonation(donation), nil
}

func (s *donationService) AcceptDonation(ctx context.Context, donationID string, staffUID string) (domain.Donation, error) {
	donation, err := s.staffDonation(ctx, donationID, staffUID)
	if err != nil {
		return domain.Donation{}, err
	}

	pickupAt := time.Now().Add(PickupLeadTime)
	ok, err := s.donationRepository.UpdateStatusIf(ctx,
		donation.ID,
		entities.DonationStatusPending,
		entities.DonationStatusAccepted,
		map[string]any{"pickup_scheduled_at": pickupAt},
	)
	if err != nil {
		return domain.Donation{}, err
	}
	if !ok {
		return domain.Donation{}, domain.ErrDonationNotPending
	}

	observability.DonationTransitions.WithLabelValues(string(entities.DonationStatusAccepted)).Inc()

	donation.Status = entities.DonationStatusAccepted
	donation.PickupScheduledAt = &pickupAt

	go s.notifyDonorAccepted(donation, pickupAt)

	return toDonation(donation), nil
}

func (s *donationService) notifyDonorAccepted(donation *entities.Donation, pickupAt time.Time) {
	donor, err := s.userRepository.GetByFirebaseUID(context.Background(), donation.DonorID)
	if err != nil || donor.Email == "" {
		return
	}

	foodBankName := "the food bank"
	if donation.FoodBank != nil {
		foodBankName = donation.FoodBank.Name
	}

	if err := mailing.SendDonationAcceptedMail(donor.Email, foodBankName, pickupAt); err != nil {
		log.WithError(err).WithField("donation_id", donation.ID).Warn("failed to send acceptance mail")
	}
}

func (s *donationService) DeclineDonation(ctx context.Context, donationID string, staffUID string) error {
	donation, err := s.staffDonation(ctx, donationID, staffUID)
	if err != nil {
		return err
	}

	err = s.donationRepository.TransitionAndRestore(ctx,
		donation.ID,
		[]entities.DonationStatus{entities.DonationStatusPending},
		entities.DonationStatusDeclined,
	)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return domain.ErrDonationNotPending
	}
	if err != nil {
		return err
	}

	observability.DonationTransitions.WithLabelValues(string(entities.DonationStatusDeclined)).Inc()
	return nil
}

func (s *donationService) CancelDonation(ctx context.Context, donationID string, donorID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		return domain.ErrDonationNotFound
	}
	if donation.DonorID != donorID {
		return domain.ErrDonationAccessDenied
	}
	if donation.Status == entities.DonationStatusCompleted || donation.Status == entities.DonationStatusPickedUp {
		return domain.ErrDonationNotCancellable
	}

	err = s.donationRepository.TransitionAndRestore(ctx,
		donation.ID,
		[]entities.DonationStatus{entities.DonationStatusPending, entities.DonationStatusAccepted},
		entities.DonationStatusCancelled,
	)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return domain.ErrDonationNotCancellable
	}
	if err != nil {
		return err
	}

	observability.DonationTransitions.WithLabelValues(string(entities.DonationStatusCancelled)).Inc()
	return nil
}

// UpdateDonationStatus is the donor's side of the lifecycle; food bank staff
// use Accept and Decline.
func (s *donationService) UpdateDonationStatus(ctx context.Context, donationID string, donorID string, status string) error {
	target := entities.DonationStatus(status)
	if !IsValidStatus(target) {
		return domain.ErrInvalidDonationStatus
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		return domain.ErrDonationNotFound
	}
	if donation.DonorID != donorID {
		return domain.ErrDonationAccessDenied
	}

	if !CanTransition(donation.Status, target) {
		return domain.ErrInvalidTransition
	}

	if RestoresInventory(target) {
		err := s.donationRepository.TransitionAndRestore(ctx,
			donation.ID,
			[]entities.DonationStatus{donation.Status},
			target,
		)
		if err != nil {
			return err
		}
		observability.DonationTransitions.WithLabelValues(string(target)).Inc()
		return nil
	}

	updates := map[string]any{}
	if target == entities.DonationStatusAccepted {
		updates["pickup_scheduled_at"] = time.Now().Add(PickupLeadTime)
	}
	if target == entities.DonationStatusPickedUp || target == entities.DonationStatusCompleted {
		updates["pickup_completed_at"] = time.Now()
	}

	ok, err := s.donationRepository.UpdateStatusIf(ctx, donation.ID, donation.Status, target, updates)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}

	observability.DonationTransitions.WithLabelValues(string(target)).Inc()
	return nil
}

func (s *donationService) DismissDonation(ctx context.Context, donationID string, donorID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		return domain.ErrDonationNotFound
	}
	if donation.DonorID != donorID {
		return domain.ErrDonationAccessDenied
	}
	return s.donationRepository.SetDismissed(ctx, donation.ID)
}

func (s *donationService) GetPendingDonations(ctx context.Context, staffUID string) ([]domain.Donation, error) {
	profile, err := s.userRepository.GetByFirebaseUID(ctx, staffUID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if profile.FoodBankID == nil {
		return nil, domain.ErrNoFoodBankAffiliation
	}

	donations, err := s.donationRepository.GetPendingByFoodBank(ctx, *profile.FoodBankID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Donation, 0, len(donations))
	for _, d := range donations {
		res = append(res, toDonation(d))
	}
	return res, nil
}

func (s *donationService) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := s.donationRepository.GetLeaderboard(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		name := row.Name
		if name == "" {
			name = "Anonymous"
		}
		role := row.Role
		if role == "" {
			role = string(entities.RoleUser)
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:           i + 1,
			DonorID:        row.DonorID,
			Name:           name,
			Role:           role,
			TotalDonations: row.TotalDonations,
			TotalItems:     row.TotalItems,
		})
	}
	return entries, nil
}

// staffDonation loads a donation and checks the caller works at the food
// bank it targets.
func (s *donationService) staffDonation(ctx context.Context, donationID string, staffUID string) (*entities.Donation, error) {
	profile, err := s.userRepository.GetByFirebaseUID(ctx, staffUID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if profile.FoodBankID == nil {
		return nil, domain.ErrNoFoodBankAffiliation
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		return nil, domain.ErrDonationNotFound
	}
	if *profile.FoodBankID != donation.FoodBankID {
		return nil, domain.ErrWrongFoodBank
	}

	return donation, nil
}

func toDonation(d *entities.Donation) domain.Donation {
	res := domain.Donation{
		ID:                d.ID.String(),
		DonorID:           d.DonorID,
		FoodBankID:        d.FoodBankID.String(),
		Status:            string(d.Status),
		PickupScheduledAt: d.PickupScheduledAt,
		PickupCompletedAt: d.PickupCompletedAt,
		Notes:             d.Notes,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}

	for _, item := range d.Items {
		res.Items = append(res.Items, domain.DonationItemSnapshot{
			FoodItemID: item.FoodItemID.String(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
		})
	}

	if d.FoodBank != nil {
		fb := domain.FoodBank{
			ID:        d.FoodBank.ID.String(),
			Name:      d.FoodBank.Name,
			Type:      string(d.FoodBank.Type),
			Address:   d.FoodBank.Address,
			Latitude:  d.FoodBank.Latitude,
			Longitude: d.FoodBank.Longitude,
			Phone:     d.FoodBank.Phone,
			OpenUntil: d.FoodBank.OpenUntil,
		}
		res.FoodBank = &fb
	}

	return res
}
