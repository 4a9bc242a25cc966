package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const defaultRole = "USER"

// TokenIssuer emite y valida tokens firmados. Lo implementa jwtauth.Manager;
// se recibe ya construido (una sola instancia por proceso, sin estado global).
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
	Validate(token, username string) bool
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// Register crea la cuenta con el password hasheado y emite un token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return User{}, "", ErrInvalidInput
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return User{}, "", err
	}
	if taken {
		return User{}, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", err
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = defaultRole
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        strings.TrimSpace(in.Email),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         role,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, "", err
	}

	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// Login verifica credenciales y emite un token.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (s *Service) Login(ctx context.Context, username, password string) (User, string, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// ValidateToken responde si el token es válido y pertenece al username.
// Nunca devuelve error: un token roto es simplemente inválido.
func (s *Service) ValidateToken(token, username string) bool {
	return s.tokens.Validate(token, username)
}
