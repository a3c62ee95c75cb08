package auth

import (
	"fmt"
	"strconv"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAccessTokenExpire is the lifetime of a login token.
const DefaultAccessTokenExpire = 24 * time.Hour

// TokenError represents token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	// ErrInvalidToken is returned when a token fails verification
	ErrInvalidToken = TokenError("invalid token")
	// ErrNeedSigningKey is returned when the manager has no signing key
	ErrNeedSigningKey = TokenError("cannot sign token without a key")
)

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	key string
}

// NewTokenManager creates a new TokenManager instance
func NewTokenManager(key string) *TokenManager {
	return &TokenManager{key: key}
}

// GenerateAccessToken signs a token for the given user id.
func (m *TokenManager) GenerateAccessToken(userID uint) (string, error) {
	if m.key == "" {
		return "", ErrNeedSigningKey
	}

	claims := jwtstd.MapClaims{
		"jti": uuid.NewString(),
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(DefaultAccessTokenExpire).Unix(),
		"iat": time.Now().Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.key))
}

// VerifyAccessToken checks the token signature and expiry and returns the
// user id carried in the subject claim.
func (m *TokenManager) VerifyAccessToken(token string) (uint, error) {
	parsed, err := jwtstd.Parse(token, func(t *jwtstd.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtstd.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.key), nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwtstd.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
