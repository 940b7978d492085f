package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/syhrzkwn/boilerplate-project-exercisetracker/pkg/appenv"

	"github.com/gin-gonic/gin"
)

// CORS configures cross-origin headers. Outside production any origin is
// allowed; in production the incoming Origin is reflected only when listed in
// the comma-separated ALLOWED_ORIGINS env var.
func CORS() gin.HandlerFunc {
	isProd := appenv.IsProduction() || gin.Mode() == gin.ReleaseMode

	var allowed map[string]struct{}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		allowed = make(map[string]struct{})
		for _, o := range strings.Split(raw, ",") {
			if origin := strings.TrimSpace(o); origin != "" {
				allowed[origin] = struct{}{}
			}
		}
	}

	const methods = "GET, POST, OPTIONS"
	const headers = "Origin, Content-Type"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		c.Header("Vary", "Origin")

		if !isProd {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
		} else if origin != "" && allowed != nil {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", methods)
				c.Header("Access-Control-Allow-Headers", headers)
			}
		}

		if c.Request.Method == http.MethodOptions {
			// Preflight. When the origin is not allowed the headers above are
			// absent and the browser blocks the request.
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
