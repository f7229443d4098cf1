package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	"mallbook/shared/constant"
	"mallbook/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")

	errMissingHeader = errors.New("authorization header is required")
	errBearerPrefix  = errors.New("authorization header must start with 'Bearer '")
)

const bearerScheme = "Bearer"

// TokenType tells access tokens apart from refresh tokens. Each type is
// signed with its own secret.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carries the mall user identity inside every token.
type Claims struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
	TokenID  string    `json:"token_id"`
	Type     TokenType `json:"type"`
	IssuedAt time.Time `json:"iat"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, userID, email, role string) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type signingKey struct {
	secret []byte
	ttl    time.Duration
}

type issuer struct {
	name string
	keys map[TokenType]signingKey
	otel otel.Otel
}

func New(cfg *config.Config, tracer otel.Otel) JWT {
	return &issuer{
		name: cfg.App.Name,
		keys: map[TokenType]signingKey{
			AccessToken: {
				secret: []byte(cfg.JWT.AccessSecret),
				ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
			},
			RefreshToken: {
				secret: []byte(cfg.JWT.RefreshSecret),
				ttl:    time.Duration(cfg.JWT.RefreshExpireMin) * time.Minute,
			},
		},
		otel: tracer,
	}
}

func (i *issuer) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return i.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".jwt."+op)
}

func (i *issuer) key(tokenType TokenType) (signingKey, error) {
	key, ok := i.keys[tokenType]
	if !ok {
		return signingKey{}, fmt.Errorf("unknown token type: %s", tokenType)
	}

	return key, nil
}

func (i *issuer) GenerateTokenPair(ctx context.Context, userID, email, role string) (*TokenPair, error) {
	_, scope := i.scope(ctx, "GenerateTokenPair")
	defer scope.End()

	scope.SetAttribute("user.role", role)

	now := timezone.Now()
	identity := Claims{UserID: userID, Email: email, Role: role}

	access, err := i.sign(identity, AccessToken, now)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := i.sign(identity, RefreshToken, now)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    bearerScheme,
		ExpiresIn:    int64(i.keys[AccessToken].ttl.Seconds()),
	}, nil
}

func (i *issuer) sign(identity Claims, tokenType TokenType, issuedAt time.Time) (string, error) {
	key, err := i.key(tokenType)
	if err != nil {
		return "", err
	}

	tokenID := uuid.NewString()

	claims := identity
	claims.TokenID = tokenID
	claims.Type = tokenType
	claims.IssuedAt = issuedAt
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(key.ttl)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		Issuer:    i.name,
		Subject:   identity.UserID,
		ID:        tokenID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (i *issuer) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error) {
	_, scope := i.scope(ctx, "ValidateToken")
	defer scope.End()

	key, err := i.key(tokenType)
	if err != nil {
		return nil, err
	}

	claims := new(Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return key.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// an access token must not be accepted where a refresh token is expected, and vice versa
	if claims.Type != tokenType {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (i *issuer) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	ctx, scope := i.scope(ctx, "RefreshTokens")
	defer scope.End()

	claims, err := i.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return i.GenerateTokenPair(ctx, claims.UserID, claims.Email, claims.Role)
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errMissingHeader
	}

	token, found := strings.CutPrefix(authHeader, bearerScheme+" ")
	token = strings.TrimSpace(token)

	if !found || token == "" {
		return "", errBearerPrefix
	}

	return token, nil
}
