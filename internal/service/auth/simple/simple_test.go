package service_simple_auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	infra_memory "github.com/humanbelnik/flowquest/core/internal/infra/memory"
	"github.com/humanbelnik/flowquest/core/internal/model"
	mocks "github.com/humanbelnik/flowquest/core/internal/service/auth/simple/mocks/session"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SimpleAuthSuite struct {
	suite.Suite
}

type resources struct {
	service *Service
	now     time.Time
}

func initResources() *resources {
	r := &resources{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return r.now }
	r.service = New("test-secret", infra_memory.New(infra_memory.WithClock(clock)), time.Hour)
	r.service.now = clock
	return r
}

func (s *SimpleAuthSuite) TestGuestRoundTrip(t provider.T) {
	t.Parallel()
	r := initResources()

	token, issued, err := r.service.Guest("  Ada ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", issued.Name)
	assert.True(t, issued.Valid())

	got, err := r.service.Principal(token)
	require.NoError(t, err)
	assert.Equal(t, issued, got)
}

func (s *SimpleAuthSuite) TestDisplayName(t provider.T) {
	t.Parallel()
	assert.Equal(t, defaultName, displayName("   "))
	assert.Equal(t, "Bob", displayName("Bob"))
	assert.Equal(t, maxNameLength, len([]rune(displayName(strings.Repeat("ж", 50)))))
}

func (s *SimpleAuthSuite) TestRejected(t provider.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token func(r *resources) string
	}{
		{
			name:  "garbage",
			token: func(*resources) string { return "not-a-token" },
		},
		{
			name: "expired",
			token: func(r *resources) string {
				token, _, err := r.service.Guest("late")
				require.NoError(t, err)
				r.now = r.now.Add(2 * time.Hour)
				return token
			},
		},
		{
			name: "revoked",
			token: func(r *resources) string {
				token, _, err := r.service.Guest("gone")
				require.NoError(t, err)
				require.NoError(t, r.service.Revoke(token))
				return token
			},
		},
		{
			name: "foreign secret",
			token: func(r *resources) string {
				other := New("other-secret", infra_memory.New(), time.Hour)
				token, _, err := other.Guest("mallory")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "unsigned",
			token: func(r *resources) string {
				c := claims{Name: "none", RegisteredClaims: jwt.RegisteredClaims{Subject: "x", ID: "y"}}
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t provider.T) {
			r := initResources()
			_, err := r.service.Principal(tt.token(r))
			assert.ErrorIs(t, err, model.ErrUnauthorized)
		})
	}
}

func (s *SimpleAuthSuite) TestCacheFailures(t provider.T) {
	t.Parallel()
	down := errors.New("redis down")

	cache := mocks.NewSessionCache(t)
	cache.On("Set", mock.Anything, mock.Anything, time.Hour).Return(down).Once()
	service := New("k", cache, time.Hour)

	_, _, err := service.Guest("x")
	assert.ErrorIs(t, err, model.ErrInternal)
	assert.ErrorIs(t, err, down)

	cache.On("Set", mock.Anything, mock.Anything, time.Hour).Return(nil).Once()
	token, _, err := service.Guest("x")
	require.NoError(t, err)

	cache.On("Get", mock.MatchedBy(func(k string) bool { return strings.HasPrefix(k, sessionPrefix) })).Return("", down).Once()
	_, err = service.Principal(token)
	assert.ErrorIs(t, err, model.ErrInternal)
}

func TestSimpleAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(SimpleAuthSuite))
}
