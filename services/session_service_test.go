package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueAndVerify(t *testing.T) {
	svc, err := NewSessionService("secret", time.Hour)
	require.NoError(t, err)

	session, err := svc.Issue("")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ClientID)

	subject, err := svc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ClientID, subject)

	renewed, err := svc.Issue(session.ClientID)
	require.NoError(t, err)
	assert.Equal(t, session.ClientID, renewed.ClientID)
}

func TestSessionService_RejectsBadTokens(t *testing.T) {
	svc, err := NewSessionService("secret", time.Hour)
	require.NoError(t, err)

	other, err := NewSessionService("another-secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue("client")
	require.NoError(t, err)

	_, err = svc.Verify(foreign.Token)
	assert.Error(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "client",
		Issuer:  "someone-else",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.Verify(wrongIssuer)
	assert.Error(t, err)
}

func TestSessionService_Expiry(t *testing.T) {
	svc, err := NewSessionService("secret", time.Hour)
	require.NoError(t, err)

	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }
	session, err := svc.Issue("client")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), session.ExpiresAt)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.Verify(session.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewSessionService_RequiresSecret(t *testing.T) {
	_, err := NewSessionService("", 0)
	assert.Error(t, err)
}
