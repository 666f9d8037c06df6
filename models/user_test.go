package models_test

import (
	"testing"

	"diamond-crown-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestUserPasswordHashing(t *testing.T) {
	var user models.User
	assert.NoError(t, user.SetPassword("secret123"))
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.ComparePassword("secret123"))
	assert.False(t, user.ComparePassword("wrong"))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&models.User{Role: models.RoleAdmin}).IsAdmin())
	assert.False(t, (&models.User{Role: models.RoleUser}).IsAdmin())
}
