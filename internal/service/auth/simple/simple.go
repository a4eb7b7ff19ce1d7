package service_simple_auth

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

type Token = string

const (
	defaultName   = "Guest"
	maxNameLength = 32
	sessionPrefix = "guest:"
)

//go:generate mockery --name=SessionCache --output=./mocks/session --filename=session.go
type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	// Empty value for missing or expired keys.
	Get(key string) (string, error)
	Delete(key string) error
}

type claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Service issues guest identities. A token is accepted while its signature
// holds, it has not expired and its session has not been revoked.
type Service struct {
	secret       []byte
	sessionCache SessionCache
	ttl          time.Duration
	now          func() time.Time
}

func New(
	secret string,
	sessionCache SessionCache,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		secret:       []byte(secret),
		sessionCache: sessionCache,
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *Service) Guest(name string) (Token, model.Principal, error) {
	principal := model.Principal{UserID: uuid.New(), Name: displayName(name)}
	now := s.now()

	c := claims{
		Name: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", model.Principal{}, errors.Join(model.ErrInternal, err)
	}
	if err := s.sessionCache.Set(sessionPrefix+c.ID, c.Subject, s.ttl); err != nil {
		return "", model.Principal{}, errors.Join(model.ErrInternal, err)
	}
	return t, principal, nil
}

func (s *Service) Principal(t Token) (model.Principal, error) {
	c, err := s.parse(t)
	if err != nil {
		return model.Principal{}, err
	}
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: bad subject", model.ErrUnauthorized)
	}

	v, err := s.sessionCache.Get(sessionPrefix + c.ID)
	if err != nil {
		return model.Principal{}, errors.Join(model.ErrInternal, err)
	}
	if v != c.Subject {
		return model.Principal{}, fmt.Errorf("%w: session revoked", model.ErrUnauthorized)
	}
	return model.Principal{UserID: userID, Name: c.Name}, nil
}

func (s *Service) Revoke(t Token) error {
	c, err := s.parse(t)
	if err != nil {
		return err
	}
	if err := s.sessionCache.Delete(sessionPrefix + c.ID); err != nil {
		return errors.Join(model.ErrInternal, err)
	}
	return nil
}

func (s *Service) parse(t Token) (*claims, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(t, c, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}
	return c, nil
}

func displayName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return defaultName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}
	return name
}
