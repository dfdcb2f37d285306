package auth

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	viper.Set("auth.secret", "test-secret")
	defer viper.Set("auth.secret", "")

	token, err := GenerateToken("user-1", "role-1", "company-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "role-1", claims.RoleID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "syscomply", claims.Issuer)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	viper.Set("auth.secret", "")

	_, err := GenerateToken("user-1", "role-1", "company-1", time.Hour)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	viper.Set("auth.secret", "test-secret")
	defer viper.Set("auth.secret", "")

	_, err := GenerateToken("", "role-1", "company-1", time.Hour)
	assert.Error(t, err)
}

func TestParseAndValidateRejectsExpiredToken(t *testing.T) {
	viper.Set("auth.secret", "test-secret")
	defer viper.Set("auth.secret", "")

	token, err := GenerateToken("user-1", "role-1", "company-1", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAndValidateRejectsWrongSecret(t *testing.T) {
	viper.Set("auth.secret", "test-secret")
	defer viper.Set("auth.secret", "")

	token, err := GenerateToken("user-1", "role-1", "company-1", time.Hour)
	require.NoError(t, err)

	viper.Set("auth.secret", "another-secret")
	_, err = ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAndValidateRejectsGarbage(t *testing.T) {
	viper.Set("auth.secret", "test-secret")
	defer viper.Set("auth.secret", "")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseAndValidate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
