package http_init

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/flowquest/core/internal/config"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type HTTPInitSuite struct {
	suite.Suite
}

type pingController struct{}

func (pingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
}

func (s *HTTPInitSuite) TestRoutesUnderPrefix(t provider.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var seen int
	pool := NewControllerPool(config.HTTPServer{CORSOrigins: []string{"http://board.test"}}, func(ctx *gin.Context) {
		seen++
		ctx.Next()
	})
	pool.Add(pingController{})
	pool.Register()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://board.test")
	w := httptest.NewRecorder()
	pool.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://board.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 1, seen)
}

func (s *HTTPInitSuite) TestCORSConfig(t provider.T) {
	t.Parallel()
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	c := corsConfig([]string{"http://a.test"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.test"}, c.AllowOrigins)
}

func TestHTTPInitSuite(t *testing.T) {
	suite.RunSuite(t, new(HTTPInitSuite))
}
