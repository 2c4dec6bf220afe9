// Package middleware holds the gin middlewares shared by every route.
package middleware

import (
	"strings"

	"freight_crm/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"

	sessionKey = "session"
)

// Session reads the operator identity forwarded by the gateway. Requests
// without it still pass; handlers that author data reject them.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, entities.Session{
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			UserName: strings.TrimSpace(c.GetHeader(HeaderUserName)),
		})
		c.Next()
	}
}

// SessionFrom returns the request session, or a zero Session when the
// middleware did not run.
func SessionFrom(c *gin.Context) entities.Session {
	s, _ := c.Get(sessionKey)
	session, _ := s.(entities.Session)
	return session
}
