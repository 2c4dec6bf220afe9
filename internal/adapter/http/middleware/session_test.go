package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_crm/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got entities.Session
	r := gin.New()
	r.Use(Session())
	r.GET("/me", func(c *gin.Context) {
		got = SessionFrom(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderUserID, " u-7 ")
	req.Header.Set(HeaderUserName, "Ana")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got.UserID != "u-7" || got.UserName != "Ana" || !got.Valid() {
		t.Fatalf("unexpected session: %+v", got)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))
	if got.Valid() {
		t.Fatalf("expected anonymous session, got %+v", got)
	}
}

func TestSessionFrom_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if s := SessionFrom(c); s.Valid() {
		t.Fatalf("expected zero session, got %+v", s)
	}
}
