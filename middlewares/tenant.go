package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/tenant"
)

// TenantRewrite is the network edge: it resolves (host, path) and either
// passes the request through, redirects to a locale-prefixed path, or
// rewrites it under the tenant marker and re-dispatches. Rewritten paths
// resolve to pass-through on the second dispatch, so this cannot loop.
func TenantRewrite(engine *gin.Engine, resolver *tenant.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := resolver.Resolve(c.Request.Host, c.Request.URL.Path)
		switch res.Action {
		case tenant.ActionRedirect:
			location := res.Path
			if q := c.Request.URL.RawQuery; q != "" {
				location += "?" + q
			}
			c.Redirect(http.StatusTemporaryRedirect, location)
			c.Abort()
		case tenant.ActionRewrite:
			c.Request.URL.Path = res.Path
			engine.HandleContext(c)
			c.Abort()
		default:
			c.Next()
		}
	}
}
