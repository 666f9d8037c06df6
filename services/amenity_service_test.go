package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmenityService(t *testing.T) *AmenityService {
	t.Helper()
	return NewAmenityService(newTestDB(t))
}

func TestAmenityCreate(t *testing.T) {
	svc := newAmenityService(t)

	amenity, err := svc.Create(" Infinity Pool ", " Rooftop pool with ocean views ", "https://cdn.example.com/pool.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Infinity Pool", amenity.Title)
	assert.Equal(t, "Rooftop pool with ocean views", amenity.Description)

	_, err = svc.Create("", "desc", "https://cdn.example.com/x.jpg")
	assert.ErrorIs(t, err, ErrAmenityFields)

	_, err = svc.Create("Spa", "Full service spa", "")
	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestAmenityUpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	svc := newAmenityService(t)

	amenity, err := svc.Create("Spa", "Full service spa", "https://cdn.example.com/spa.jpg")
	require.NoError(t, err)

	updated, err := svc.Update(amenity.ID, "Luxury Spa", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Luxury Spa", updated.Title)
	assert.Equal(t, "Full service spa", updated.Description)
	assert.Equal(t, "https://cdn.example.com/spa.jpg", updated.Image)

	updated, err = svc.Update(amenity.ID, "", "", "https://cdn.example.com/spa-v2.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/spa-v2.jpg", updated.Image)

	_, err = svc.Update(999, "Ghost", "", "")
	assert.ErrorIs(t, err, ErrAmenityNotFound)
}

func TestAmenityDelete(t *testing.T) {
	svc := newAmenityService(t)

	amenity, err := svc.Create("Gym", "24h fitness centre", "https://cdn.example.com/gym.jpg")
	require.NoError(t, err)

	deleted, err := svc.Delete(amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/gym.jpg", deleted.Image)

	_, err = svc.Delete(amenity.ID)
	assert.ErrorIs(t, err, ErrAmenityNotFound)

	amenities, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, amenities)
}
