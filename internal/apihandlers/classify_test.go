package apihandlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/app"
	"newsdesk/internal/services"
)

func classifyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAPIHandler(&app.App{
		ClassificationService: services.NewClassificationService(),
	})
	router := gin.New()
	router.POST("/api/v1/classify", handler.ClassifyHandler)
	return router
}

func TestClassifyHandler(t *testing.T) {
	router := classifyRouter()

	body := `{"text": "The stock market rallied after the federal reserve held interest rates steady and investors cheered strong earnings."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"Business"`)
	assert.Contains(t, w.Body.String(), `"predictions"`)
}

func TestClassifyHandlerEmptyText(t *testing.T) {
	router := classifyRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(`{"text": "   "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyHandlerBadBody(t *testing.T) {
	router := classifyRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc-123", "abc-123", true},
		{"Bearer   spaced  ", "spaced", true},
		{"bearer abc", "", false},
		{"Basic abc", "", false},
		{"", "", false},
		{"Bearer ", "", false},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		token, ok := bearerToken(c)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.token, token, "header %q", tc.header)
	}
}
