package service

import (
	"context"
	"time"

	"github.com/atendemei/painel/internal/config"
	"github.com/atendemei/painel/internal/model"
	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/pkg/jwt"
	"github.com/atendemei/painel/internal/pkg/password"
	"github.com/atendemei/painel/internal/session"
)

// accountStore is the slice of UserRepo the auth flow touches; tests swap in
// an in-memory fake.
type accountStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Upsert(ctx context.Context, user *model.User) error
}

type AuthService struct {
	users    accountStore
	sessions *session.Store
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(users accountStore, sessions *session.Store, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, secret: secret, ttl: ttl}
}

// Login returns a signed session token. Lookup and digest mismatch collapse
// into the same error so a caller cannot probe for valid usernames.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", appErr.ErrUnauthorized
	}
	sessionID := s.sessions.Create(user.Username)
	token, err := jwt.GenerateToken(sessionID, user.Username, s.secret, s.ttl)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes the server-side session; an invalid token is a no-op since
// the outcome the client wants is already true.
func (s *AuthService) Logout(token string) {
	claims, err := jwt.ParseToken(token, s.secret)
	if err != nil {
		return
	}
	s.sessions.Delete(claims.SessionID)
}

func (s *AuthService) Authenticated(token string) bool {
	if token == "" {
		return false
	}
	claims, err := jwt.ParseToken(token, s.secret)
	if err != nil {
		return false
	}
	return s.sessions.Valid(claims.SessionID)
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.ttl
}

// SeedAdmin creates or refreshes the panel account from config. The email is
// stored lowercased so the reset flow, which lowercases submitted addresses
// before its exact-match lookups, can always find it.
func (s *AuthService) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	hash, err := password.Hash(cfg.Password)
	if err != nil {
		return err
	}
	return s.users.Upsert(ctx, &model.User{
		Username:     cfg.Username,
		PasswordHash: hash,
		Email:        normalizeEmail(cfg.Email),
	})
}
