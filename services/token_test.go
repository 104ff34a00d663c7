package services

import (
	"testing"

	"bms-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := &entities.User{ID: "user-1", Email: "rahim@example.com", Role: entities.RoleResident}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "rahim@example.com", claims.Email)
	assert.Equal(t, entities.RoleResident, claims.Role)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue(&entities.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
