package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/realty-service/internal/config"
	"github.com/spec-kit/realty-service/internal/domain"
)

// TokenCodec issues and verifies the bearer tokens the service hands out at
// login. Tokens are standard compact JWTs (header.claims.signature), so any
// compliant verifier holding the same secret accepts them.
type TokenCodec struct {
	secret   []byte
	method   jwt.SigningMethod
	issuer   string
	audience string
	ttl      time.Duration
}

// Claims describes the JWT payload: subject, role and the registered
// iat/exp/iss/aud claims.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenCodec builds a codec from the immutable auth configuration.
func NewTokenCodec(cfg config.AuthConfig) *TokenCodec {
	return &TokenCodec{
		secret:   []byte(cfg.JWTSecret),
		method:   signingMethod(cfg.JWTAlgorithm),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      cfg.AccessTokenTTL(),
	}
}

func signingMethod(alg string) jwt.SigningMethod {
	switch alg {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

// Encode signs a token for the subject using the configured lifetime.
func (c *TokenCodec) Encode(subject string, role domain.Role) (string, time.Time, error) {
	return c.EncodeWithTTL(subject, role, c.ttl)
}

// EncodeWithTTL signs a token with an explicit lifetime. A non-positive ttl
// produces an already-expired token, which some tests rely on.
func (c *TokenCodec) EncodeWithTTL(subject string, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(ttl)

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(c.method, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Decode verifies a token string and returns its claims. The signature is
// checked before any claim is trusted, then expiry, then issuer and audience;
// failures carry the matching kind and no claims are returned alongside them.
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, c.keyFunc,
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
		// strict base64 so any bit-level tamper in a segment fails decoding
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != c.method.Alg() {
		return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
	}
	return c.secret, nil
}

// classifyTokenError maps golang-jwt parse errors to failure kinds. Expiry is
// checked before issuer/audience so a token that is both expired and misrouted
// reports TOKEN_EXPIRED.
func classifyTokenError(err error) *Failure {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrTokenAudience
	default:
		return ErrTokenMalformed
	}
}
