package http_swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SwaggerSuite struct {
	suite.Suite
}

func (s *SwaggerSuite) TestServesDoc(t provider.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New().RegisterRoutes(router.Group("/api/v1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/players/{player_id}/moves")
}

func TestSwaggerSuite(t *testing.T) {
	suite.RunSuite(t, new(SwaggerSuite))
}
