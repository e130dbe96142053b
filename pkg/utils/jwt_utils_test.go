package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "owner@shop.test", 7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "owner@shop.test", claims.Email)
	assert.Equal(t, int64(7), claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "inventory-pos-backend", claims.Issuer)
}

func TestAccessTokenWithoutProfile(t *testing.T) {
	// Users who registered but have no profile yet carry zero values; handlers
	// turn those into the company-unresolved error.
	token, err := GenerateAccessToken(42, "orphan@shop.test", 0, "")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Zero(t, claims.CompanyID)
	assert.Empty(t, claims.Role)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateAccessToken(42, "owner@shop.test", 7, "admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateRefreshTokenChecksIssuer(t *testing.T) {
	refreshToken, err := GenerateRefreshToken(42)
	require.NoError(t, err)
	accessToken, err := GenerateAccessToken(42, "owner@shop.test", 7, "admin")
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	_, err = ValidateRefreshToken(accessToken)
	assert.Error(t, err, "access tokens are not accepted as refresh tokens")

	_, err = ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	token, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Empty(t, claims.Email)
	assert.Zero(t, claims.CompanyID)
}
