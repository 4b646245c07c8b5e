package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/atendemei/painel/internal/mail"
	"github.com/atendemei/painel/internal/model"
	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/pkg/password"
	"github.com/atendemei/painel/internal/resetcode"
)

const resetCodeTTL = 15 * time.Minute

// userStore is the slice of UserRepo the reset flow touches; tests swap in
// an in-memory fake.
type userStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}

// ResetService drives the password-reset state machine: Idle -> Pending on
// request, Pending -> Idle on consume. A second request supersedes the first
// code; verification never changes state.
type ResetService struct {
	users  userStore
	codes  *resetcode.Store
	sender mail.Sender
	now    func() time.Time
}

func NewResetService(users userStore, codes *resetcode.Store, sender mail.Sender) *ResetService {
	return &ResetService{users: users, codes: codes, sender: sender, now: time.Now}
}

// Request issues a fresh code for a known email. Delivery failures are
// logged and swallowed: the HTTP acknowledgement must not reveal transport
// state, and the logged code doubles as the recovery channel when SMTP is
// not configured.
func (s *ResetService) Request(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return appErr.ErrInvalid
	}
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		return err
	}
	code := s.generateCode()
	s.codes.Set(email, code, s.now().Add(resetCodeTTL))
	logutil.GetLogger(ctx).Info("password reset code issued",
		zap.String("email", email),
		zap.String("code", code),
	)
	err := s.sender.Send(&mail.Message{
		To:      email,
		Subject: "Password recovery code",
		Text:    fmt.Sprintf("Your security code is %s. It expires in %d minutes.", code, int(resetCodeTTL.Minutes())),
		HTML:    fmt.Sprintf("<h2>Password reset</h2><p>Your security code is: <b style=\"font-size:18px\">%s</b></p><p>This code expires in %d minutes.</p>", code, int(resetCodeTTL.Minutes())),
	})
	if err != nil {
		logutil.GetLogger(ctx).Warn("reset code mail delivery failed, code available in log only",
			zap.String("email", email),
			zap.Error(err),
		)
	}
	return nil
}

// Verify is a read-only check. A wrong or unknown code is ErrCodeInvalid;
// ErrCodeExpired is reported only when the code itself matches.
func (s *ResetService) Verify(email, code string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return appErr.ErrCodeInvalid
	}
	entry, ok := s.codes.Get(email)
	if !ok || entry.Code != code {
		return appErr.ErrCodeInvalid
	}
	if !s.now().Before(entry.ExpiresAt) {
		return appErr.ErrCodeExpired
	}
	return nil
}

// Consume re-checks the code independently of any prior Verify call (no
// token bridges the two steps), persists the new digest and deletes the
// pending entry. On any failure the entry is left in place for retry.
func (s *ResetService) Consume(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if newPassword == "" {
		return appErr.ErrInvalid
	}
	if err := s.Verify(email, code); err != nil {
		return err
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}
	s.codes.Delete(email)
	return nil
}

func (s *ResetService) generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		return fmt.Sprintf("%06d", s.now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
