package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session and gin context keys.
const (
	SessionUserKey = "user_id"
	SessionRoleKey = "role"
)

// InjectSession copies the logged-in user's id and role from the session
// cookie into the gin context.
func InjectSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserKey).(string); ok && uid != "" {
			c.Set(SessionUserKey, uid)
			if role, ok := sess.Get(SessionRoleKey).(string); ok {
				c.Set(SessionRoleKey, role)
			}
		}

		c.Next()
	}
}
