package auth

import (
	"context"
	"fmt"

	"aurum_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity extracted from a bearer token.
type Claims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Verifier validates bearer tokens against the provider's cached key set.
type Verifier struct {
	keys      *KeySet
	issuer    string
	audience  string
	namespace string
}

func NewVerifier(keys *KeySet, issuer, audience, claimsNamespace string) *Verifier {
	return &Verifier{
		keys:      keys,
		issuer:    issuer,
		audience:  audience,
		namespace: claimsNamespace,
	}
}

// Verify checks signature, issuer, audience and expiry, and returns the
// claim set. Key-set trouble surfaces as UPSTREAM_UNAVAILABLE/KEY_NOT_FOUND;
// everything else about a bad token is terminal and never retried.
func (v *Verifier) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(tokenStr, mapClaims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token header missing key id")
		}
		return v.keys.Key(ctx, kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// Keep the key-set classification when the keyfunc failed.
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired(err)
		}
		return nil, apperrors.ErrInvalidToken(err)
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, apperrors.NewUnauthorizedError("Token missing user identifier")
	}

	email := v.claimString(mapClaims, "email")
	if email == "" {
		return nil, apperrors.NewUnauthorizedError("Token missing email claim")
	}

	return &Claims{
		Subject: sub,
		Email:   email,
		Name:    v.claimString(mapClaims, "name"),
		Picture: v.claimString(mapClaims, "picture"),
	}, nil
}

// claimString reads a claim, preferring the provider's namespaced form
// (e.g. "https://example.com/email") over the plain one.
func (v *Verifier) claimString(claims jwt.MapClaims, name string) string {
	if v.namespace != "" {
		if s, ok := claims[v.namespace+name].(string); ok && s != "" {
			return s
		}
	}
	s, _ := claims[name].(string)
	return s
}
