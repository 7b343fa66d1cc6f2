package auth_test

import (
	"testing"
	"time"

	"go-talent-directory/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
}

func TestIssueAndVerifyPair(t *testing.T) {
	m := newManager()

	pair, err := m.IssuePair("user-1", "ana@example.com", "MAHASISWA")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := m.Verify(pair.Access, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "MAHASISWA", claims.Role)

	// Refresh tokens only carry the identity, not email or role.
	refreshClaims, err := m.Verify(pair.Refresh, auth.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Email)
	assert.Empty(t, refreshClaims.Role)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	m := newManager()

	pair, err := m.IssuePair("user-1", "ana@example.com", "MAHASISWA")
	require.NoError(t, err)

	_, err = m.Verify(pair.Access, auth.TokenTypeRefresh)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = m.Verify(pair.Refresh, auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	m := newManager()
	other := auth.NewTokenManager("different-secret", time.Hour, 24*time.Hour)

	token, err := other.IssueAccess("user-1", "ana@example.com", "MAHASISWA")
	require.NoError(t, err)

	_, err = m.Verify(token, auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := auth.NewTokenManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.IssueAccess("user-1", "ana@example.com", "MAHASISWA")
	require.NoError(t, err)

	_, err = m.Verify(token, auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	_, err := newManager().Verify("", auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
