package http_auth_middleware

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

const (
	Header       = "X-user-token"
	queryToken   = "token"
	principalCtx = "principal"
)

//go:generate mockery --name=Authenticator --output=./mocks --filename=authenticator.go
type Authenticator interface {
	Principal(token string) (model.Principal, error)
}

type Middleware struct {
	auth   Authenticator
	logger *slog.Logger
}

func New(
	auth Authenticator,
) *Middleware {
	return &Middleware{
		auth:   auth,
		logger: slog.Default(),
	}
}

// AuthRequired resolves the caller from the X-user-token header. Browsers
// cannot set headers on websocket upgrades, so ?token= is accepted too.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(Header)
		if t == "" {
			t = ctx.Query(queryToken)
		}
		if t == "" {
			http_common.WriteError(ctx, m.logger, fmt.Errorf("%w: no %s header", model.ErrUnauthorized, Header))
			return
		}

		principal, err := m.auth.Principal(t)
		if err != nil {
			http_common.WriteError(ctx, m.logger, err)
			return
		}
		SetPrincipal(ctx, principal)
		ctx.Next()
	}
}

func SetPrincipal(ctx *gin.Context, p model.Principal) {
	ctx.Set(principalCtx, p)
}

// PrincipalFrom returns the zero Principal outside AuthRequired routes.
func PrincipalFrom(ctx *gin.Context) model.Principal {
	v, ok := ctx.Get(principalCtx)
	if !ok {
		return model.Principal{}
	}
	p, _ := v.(model.Principal)
	return p
}
