package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("s3cret", "kart-identity", time.Hour)

	raw, err := tokens.Issue("3f1c9a1e-2b7d-4c55-9a0e-6f1d2b3c4d5e")
	require.NoError(t, err)

	sub, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "3f1c9a1e-2b7d-4c55-9a0e-6f1d2b3c4d5e", sub)
}

func TestTokens_Verify(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := NewTokens("s3cret", "kart-identity", time.Hour)
	issuer.now = func() time.Time { return base }
	valid, err := issuer.Issue("u1")
	require.NoError(t, err)

	otherSecret := NewTokens("other", "kart-identity", time.Hour)
	otherSecret.now = issuer.now
	forged, err := otherSecret.Issue("u1")
	require.NoError(t, err)

	otherIssuer := NewTokens("s3cret", "someone-else", time.Hour)
	otherIssuer.now = issuer.now
	foreign, err := otherIssuer.Issue("u1")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "kart-identity",
		ExpiresAt: jwt.NewNumericDate(base.Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		Issuer:    "kart-identity",
		ExpiresAt: jwt.NewNumericDate(base.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		at      time.Time
		wantErr error
	}{
		{name: "valid", raw: valid, at: base.Add(time.Minute)},
		{name: "expired", raw: valid, at: base.Add(2 * time.Hour), wantErr: ErrExpiredToken},
		{name: "wrong secret", raw: forged, at: base, wantErr: ErrInvalidToken},
		{name: "wrong issuer", raw: foreign, at: base, wantErr: ErrInvalidToken},
		{name: "no subject", raw: noSubject, at: base, wantErr: ErrInvalidToken},
		{name: "alg none", raw: none, at: base, wantErr: ErrInvalidToken},
		{name: "garbage", raw: "not.a.token", at: base, wantErr: ErrInvalidToken},
		{name: "empty", raw: "", at: base, wantErr: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewTokens("s3cret", "kart-identity", time.Hour)
			verifier.now = func() time.Time { return tt.at }

			sub, err := verifier.Verify(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", sub)
		})
	}
}
