// Package web provides the HTTP server and page routing for authpages
package web

import (
	"github.com/gin-gonic/gin"
)

// serveAuthScript returns the raw bytes of auth.js. The file lives at
// the site root on the dev variant and under templates/ on the TLS
// variant; the config resolves that. A missing file is a plain 404.
func (s *WebServer) serveAuthScript(c *gin.Context) {
	c.File(s.Config.ScriptPath())
}
