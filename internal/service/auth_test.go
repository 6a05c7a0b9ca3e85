//go:build !integration

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/combo-pricing-service/internal/service"
)

func TestBcryptAPIKeyVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("console-key"), bcrypt.MinCost)
	require.NoError(t, err)

	v := service.NewAPIKeyVerifier([]string{"not-a-hash", " " + string(hash) + " "})

	assert.True(t, v.Enabled())
	assert.True(t, v.VerifyAPIKey("console-key"))
	assert.True(t, v.VerifyAPIKey("console-key"))
	assert.False(t, v.VerifyAPIKey("other-key"))
	assert.False(t, v.VerifyAPIKey(""))
}

func TestBcryptAPIKeyVerifier_Disabled(t *testing.T) {
	v := service.NewAPIKeyVerifier(nil)

	assert.False(t, v.Enabled())
	assert.False(t, v.VerifyAPIKey("anything"))
}

func TestHashAPIKey(t *testing.T) {
	hash, err := service.HashAPIKey("console-key")
	require.NoError(t, err)

	assert.True(t, service.NewAPIKeyVerifier([]string{hash}).VerifyAPIKey("console-key"))
}
