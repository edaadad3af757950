package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() TokenService {
	return TokenService{
		Secret:   []byte("0123456789abcdef0123456789abcdef"),
		Issuer:   "delivery-insights",
		Duration: time.Hour,
	}
}

func TestSignAndParse(t *testing.T) {
	ts := newService()

	token, exp, err := ts.Sign("ops-dashboard")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ops-dashboard", claims.Client)
	assert.Equal(t, "ops-dashboard", claims.Subject)
	assert.Equal(t, "delivery-insights", claims.Issuer)
}

func TestParse_Rejects(t *testing.T) {
	ts := newService()

	other := newService()
	other.Secret = []byte("another-secret-another-secret-xx")
	wrongKey, _, err := other.Sign("x")
	require.NoError(t, err)

	otherIssuer := newService()
	otherIssuer.Issuer = "someone-else"
	wrongIssuer, _, err := otherIssuer.Sign("x")
	require.NoError(t, err)

	expiredSvc := newService()
	expiredSvc.Duration = -time.Minute
	expired, _, err := expiredSvc.Sign("x")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": ts.Issuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong key":    wrongKey,
		"wrong issuer": wrongIssuer,
		"expired":      expired,
		"alg none":     none,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ts.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
