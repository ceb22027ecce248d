package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueVerify(t *testing.T) {
	mgr, err := NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := mgr.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, mgr.Verify(token))
}

func TestSessionManager_VerifyRejectsForeignToken(t *testing.T) {
	mgr, err := NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	other, err := NewSessionManager("another-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue()
	require.NoError(t, err)

	assert.ErrorIs(t, mgr.Verify(token), ErrInvalidSession)
}

func TestSessionManager_VerifyRejectsGarbage(t *testing.T) {
	mgr, err := NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	assert.ErrorIs(t, mgr.Verify(""), ErrInvalidSession)
	assert.ErrorIs(t, mgr.Verify("not.a.jwt"), ErrInvalidSession)
}

func TestSessionManager_VerifyRejectsExpired(t *testing.T) {
	mgr, err := NewSessionManager("test-secret", time.Millisecond)
	require.NoError(t, err)

	token, err := mgr.Issue()
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	assert.ErrorIs(t, mgr.Verify(token), ErrInvalidSession)
}

func TestNewSessionManager_Invalid(t *testing.T) {
	_, err := NewSessionManager("", time.Hour)
	assert.Error(t, err)

	_, err = NewSessionManager("secret", 0)
	assert.Error(t, err)
}
