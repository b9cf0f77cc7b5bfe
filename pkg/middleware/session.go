package middleware

import (
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Session is the explicit identity handed to every component that needs it.
// It is built once per request from the auth collaborator's token; nothing in
// the service reads ambient global user state.
type Session struct {
	UserID        string
	Name          string
	Email         string
	Authenticated bool
}

func setSession(c *gin.Context, s *Session) {
	c.Set(sessionKey, s)
}

// GetSession returns the request's session, anonymous if none was attached.
func GetSession(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{}
}
