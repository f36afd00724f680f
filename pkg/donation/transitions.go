package donation

import "github.com/rotnot/rotnot-backend/entities"

// transitions is the donation lifecycle. Declined, completed and cancelled
// are terminal.
var transitions = map[entities.DonationStatus][]entities.DonationStatus{
	entities.DonationStatusPending: {
		entities.DonationStatusAccepted,
		entities.DonationStatusDeclined,
		entities.DonationStatusCancelled,
	},
	entities.DonationStatusAccepted: {
		entities.DonationStatusPickedUp,
		entities.DonationStatusCompleted,
		entities.DonationStatusCancelled,
	},
	entities.DonationStatusPickedUp: {
		entities.DonationStatusCompleted,
	},
}

func CanTransition(from, to entities.DonationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RestoresInventory reports whether entering a status gives the donated
// items back to the donor's registry.
func RestoresInventory(to entities.DonationStatus) bool {
	return to == entities.DonationStatusDeclined || to == entities.DonationStatusCancelled
}

func IsValidStatus(s entities.DonationStatus) bool {
	switch s {
	case entities.DonationStatusPending,
		entities.DonationStatusAccepted,
		entities.DonationStatusDeclined,
		entities.DonationStatusPickedUp,
		entities.DonationStatusCompleted,
		entities.DonationStatusCancelled:
		return true
	}
	return false
}
