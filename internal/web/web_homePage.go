// Package web provides the HTTP server and page routing for authpages
package web

import (
	"github.com/gin-gonic/gin"

	"github.com/vabxic/authpages/internal/config"
)

// homePage handles "/home" on the TLS variant.
func (s *WebServer) homePage(c *gin.Context) {
	s.renderTemplate(c, config.HomeTemplate)
}
