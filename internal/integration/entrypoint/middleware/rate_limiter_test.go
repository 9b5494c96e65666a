package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/integration/entrypoint/dto"
)

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "")

	newEngine := func(rl *RateLimiter) *gin.Engine {
		engine := gin.New()
		engine.Use(rl.Middleware())
		engine.GET("/ping", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}

	request := func(engine *gin.Engine) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		engine.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("allows requests under the limit", func(t *testing.T) {
		engine := newEngine(NewRateLimiterWithConfig(2, time.Minute))
		for i := 0; i < 2; i++ {
			if got := request(engine).Code; got != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, got)
			}
		}
	})

	t.Run("rejects over the limit with the rate limited code", func(t *testing.T) {
		engine := newEngine(NewRateLimiterWithConfig(1, time.Minute))
		request(engine)

		recorder := request(engine)
		if recorder.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", recorder.Code)
		}
		var response dto.ErrorResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if response.Code != string(domainerror.ErrCodeRateLimited) {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateLimited, response.Code)
		}
	})
}
