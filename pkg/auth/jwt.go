package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"reputation/config"
)

var ErrInvalidToken = errors.New("недействительный токен")

// Claims identify the caller only. Role and community are always read from
// storage so that a revoked administrator loses access immediately.
type Claims struct {
	jwt.RegisteredClaims
	ActorID int64 `json:"actor_id"`
}

type TokenManager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("пустой ключ подписи JWT")
	}

	return &TokenManager{
		signingKey: []byte(cfg.SigningKey),
		ttl:        cfg.AccessTokenTTL,
		now:        time.Now,
	}, nil
}

// Generate issues an access token for the actor. Tokens are normally issued by
// the session service; this is used by tooling and tests.
func (m *TokenManager) Generate(actorID int64) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actorID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ActorID: actorID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи access token: %w", err)
	}

	return token, nil
}

func (m *TokenManager) Parse(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return m.signingKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ActorID <= 0 {
		return 0, ErrInvalidToken
	}

	return claims.ActorID, nil
}
