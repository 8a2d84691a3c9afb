// Package web provides the HTTP server and page routing for authpages
package web

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/vabxic/authpages/internal/config"
)

// WebServer serves the static auth pages for one variant.
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	templates *templateCache
	StartTime time.Time // Track server start time for uptime calculations
}

// NewServer creates a new web server instance
func NewServer(webconfig *config.WebConfig) *WebServer {
	if webconfig.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	// Apply security middleware
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Router:    router,
		Config:    webconfig,
		templates: newTemplateCache(webconfig.TemplatesDir),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	s.Router.GET("/", s.landingPage)

	// The /home route only exists on the TLS variant
	if s.Config.HomePage {
		s.Router.GET("/home", s.homePage)
	}

	s.Router.GET("/auth.js", s.serveAuthScript)

	// Everything else falls through to gin's default 404
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := s.Config.Addr()
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		// Fail before binding so a missing pair never degrades to plaintext
		if _, err := os.Stat(s.Config.CertFile); err != nil {
			return fmt.Errorf("SSL certificate file: %w", err)
		}
		if _, err := os.Stat(s.Config.KeyFile); err != nil {
			return fmt.Errorf("SSL key file: %w", err)
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}
