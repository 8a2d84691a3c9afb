// Package web provides the HTTP server and page routing for authpages
package web

import (
	"github.com/gin-gonic/gin"

	"github.com/vabxic/authpages/internal/config"
)

// landingPage handles the root page ("/") for both variants.
func (s *WebServer) landingPage(c *gin.Context) {
	s.renderTemplate(c, config.LandingTemplate)
}
