package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	AccountByUsername(ctx context.Context, username string) (*Account, bool, error)
	LogBetween(ctx context.Context, userID string, from, to time.Time) (*Log, bool, error)
	InsertLog(ctx context.Context, log *Log) error
}

type Service struct {
	repo   Repository
	secret []byte
	now    func() time.Time
	newID  func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(repo Repository, secret string, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		secret: []byte(secret),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login checks credentials, enforces the one-login-per-day rule, records
// the auth log, and issues a session token valid until end of the UTC day.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ledger.NewError(ledger.ReasonValidation, "missing username or password")
	}

	acc, found, err := s.repo.AccountByUsername(ctx, username)
	if err != nil {
		return nil, ledger.Unavailable(err)
	}

	if !found || subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) != 1 {
		return nil, ledger.NewError(ReasonInvalidCredentials, "invalid credentials")
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	_, exists, err := s.repo.LogBetween(ctx, acc.ID, dayStart, dayEnd)
	if err != nil {
		return nil, ledger.Unavailable(err)
	}

	if exists {
		return nil, ledger.Errorf(ReasonAlreadyLoggedIn, "%s already logged in today", acc.Username)
	}

	if err := s.repo.InsertLog(ctx, &Log{
		ID:        s.newID(),
		Timestamp: now,
		UserID:    acc.ID,
		Username:  acc.Username,
		IsGranted: true,
	}); err != nil {
		return nil, ledger.Unavailable(err)
	}

	token, err := s.signToken(acc, now, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{
		UserID:    acc.ID,
		Username:  acc.Username,
		Token:     token,
		ExpiresAt: dayEnd,
	}, nil
}

type claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
}

func (s *Service) signToken(acc *Account, now, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: acc.Username,
	})

	return token.SignedString(s.secret)
}
