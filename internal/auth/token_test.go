package auth

import (
	"testing"

	"arte-cultura-backend/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	v := NewVerifier("test-secret")
	token, err := v.Issue(&users.User{ID: 7, Email: "ana@example.com", Role: "admin"})
	require.NoError(t, err)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "7", id.UID)
	assert.Equal(t, "ana@example.com", id.Email)
	assert.Equal(t, "admin", id.Role)
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	v := NewVerifier("test-secret")
	other := NewVerifier("other-secret")

	token, err := other.Issue(&users.User{ID: 1, Email: "x@example.com"})
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestRevokeSignsTokenOut(t *testing.T) {
	v := NewVerifier("test-secret")
	token, err := v.Issue(&users.User{ID: 7, Email: "ana@example.com", Role: "admin"})
	require.NoError(t, err)

	v.Revoke(token)

	_, err = v.Verify(token)
	assert.Error(t, err)
}
