package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/session"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

// LoadSession decodes the session cookie into the request context for
// every route under it. It never rejects; classification happens in the
// Require* middlewares below.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Load(c)
		c.Set(utils.CtxSession, sess)
		c.Set(utils.CtxPrincipal, sess.Principal())
		c.Next()
	}
}

// RequireAdmin accepts any logged-in admin, scoped or not.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentPrincipal(c).Kind == session.Anonymous {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireScoped additionally demands an effective restaurant: always true
// for a restaurant admin, true for a super-admin only after a context
// switch.
func RequireScoped() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.CurrentPrincipal(c)
		if p.Kind == session.Anonymous {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		if !p.Scoped() {
			resp.Forbidden(c, "no restaurant context")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin gates platform operations regardless of acting scope.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.CurrentPrincipal(c)
		if p.Kind == session.Anonymous {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		if p.Kind != session.SuperAdmin {
			resp.Forbidden(c, "super-admin only")
			c.Abort()
			return
		}
		c.Next()
	}
}
