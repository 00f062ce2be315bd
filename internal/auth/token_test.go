package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boz-concept/shop-service/internal/domain"
)

func TestTokenManager_UserTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 480)

	token, exp, err := tm.GenerateToken("user-1", domain.SubjectTypeUser, "")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.SubjectID)
	assert.Equal(t, domain.SubjectTypeUser, claims.Subject)
	assert.Empty(t, claims.Role)
}

func TestTokenManager_AdminTokenCarriesRole(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 60)

	token, _, err := tm.GenerateToken("admin-1", domain.SubjectTypeAdmin, domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.SubjectID)
	assert.Equal(t, domain.SubjectTypeAdmin, claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken("user-1", domain.SubjectTypeUser, "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(480*time.Minute), exp, 5*time.Second)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		SubjectID: "user-1",
		Subject:   domain.SubjectTypeUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("issuer-secret", 60)
	verifier := NewTokenManager("other-secret", 60)

	token, _, err := issuer.GenerateToken("user-1", domain.SubjectTypeUser, "")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 60)

	_, err := tm.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
