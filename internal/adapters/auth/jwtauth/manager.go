package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-api/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "vet-clinic-api"

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type tokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager firma y verifica tokens HS256.
// Se construye una sola vez en el arranque y se pasa explícito a quien lo use
// (el service de users para emitir, el middleware para verificar).
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue emite un token firmado para el usuario.
func (m *Manager) Issue(userID, username string) (string, error) {
	now := m.now()

	claims := tokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) parse(tokenString string) (*tokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrTokenEmpty
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate responde si el token es válido y pertenece al username dado.
func (m *Manager) Validate(tokenString, username string) bool {
	claims, err := m.parse(tokenString)
	if err != nil {
		return false
	}
	return claims.Username == strings.TrimSpace(username)
}

// Verify implementa auth.AuthVerifier para el middleware HTTP.
func (m *Manager) Verify(ctx context.Context, tokenString string) (auth.Claims, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return auth.Claims{}, err
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, errors.New("token claims missing user id")
	}
	return auth.Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}
