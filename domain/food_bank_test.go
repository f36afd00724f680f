package domain

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNearbyFoodBanksRequestAllowsZeroCoordinates(t *testing.T) {
	v := validator.New()

	// the equator and the prime meridian are real places
	assert.NoError(t, v.Struct(NearbyFoodBanksRequest{Latitude: 0, Longitude: 0}))

	assert.Error(t, v.Struct(NearbyFoodBanksRequest{Latitude: 91, Longitude: 0}))
	assert.Error(t, v.Struct(NearbyFoodBanksRequest{Latitude: 0, Longitude: -181}))
}
