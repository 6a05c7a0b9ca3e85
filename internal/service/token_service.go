package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
)

// ErrInvalidToken is returned when a bearer token fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// tokenLeeway absorbs clock skew with the issuer.
const tokenLeeway = 30 * time.Second

// TokenVerifier validates bearer tokens minted by the platform's identity provider.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*dto.Claims, error)
}

// tokenClaims is the JWT payload accepted by the verifier. Role is the
// single-role form some issuers emit instead of Roles.
type tokenClaims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Role  string   `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier checks HMAC-signed JWTs.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier for tokens signed with secret. A non-empty
// issuer must match the token's iss claim.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(tokenLeeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// NewJWTVerifierFromConfig builds a verifier from the auth configuration.
func NewJWTVerifierFromConfig(cfg config.AuthConfig) *JWTVerifier {
	return NewJWTVerifier(cfg.JWTSecretKey, cfg.JWTIssuer)
}

// VerifyToken parses token and returns its identity claims.
func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (*dto.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(v.secret) == 0 {
		return nil, ErrInvalidToken
	}

	var claims tokenClaims
	parsed, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	roles := claims.Roles
	if claims.Role != "" {
		roles = append(roles, claims.Role)
	}
	return &dto.Claims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Roles:   roles,
	}, nil
}
