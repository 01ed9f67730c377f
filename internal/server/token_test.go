package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", 0)
	assert.Error(t, err)
}

func TestUnlockToken_Roundtrip(t *testing.T) {
	svc, err := NewTokenService("test-secret", 0)
	require.NoError(t, err)

	reportID := uuid.New()
	token, err := svc.IssueUnlockToken(reportID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateUnlockToken(token)
	require.NoError(t, err)
	assert.Equal(t, reportID, got)
}

func TestValidateUnlockToken_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-a", 0)
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-b", 0)
	require.NoError(t, err)

	token, err := issuer.IssueUnlockToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateUnlockToken(token)
	var invalid *ErrInvalidToken
	assert.ErrorAs(t, err, &invalid)
}

func TestValidateUnlockToken_Expired(t *testing.T) {
	svc, err := NewTokenService("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.IssueUnlockToken(uuid.New())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateUnlockToken(token)
	assert.Error(t, err)
}

func TestValidateUnlockToken_Garbage(t *testing.T) {
	svc, err := NewTokenService("test-secret", 0)
	require.NoError(t, err)

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := svc.ValidateUnlockToken(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}
