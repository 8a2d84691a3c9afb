// Package config provides configuration management for authpages.
package config

import (
	"net"
	"path/filepath"
	"strconv"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// DefaultPort is shared by both server variants.
	DefaultPort = 5000

	// Default file layout relative to the site root.
	DefaultTemplatesDir = "templates"
	DefaultCertFile     = "certificates/cert.pem"
	DefaultKeyFile      = "certificates/key.pem"

	LandingTemplate = "landing_page.html"
	HomeTemplate    = "home.html"
	AuthScript      = "auth.js"
)

// WebConfig holds the configuration for one server variant.
type WebConfig struct {
	ListenHost string `json:"listen_host"`
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`

	// SiteRoot anchors all relative paths below.
	SiteRoot     string `json:"site_root"`
	TemplatesDir string `json:"templates_dir"`
	// ScriptDir is where auth.js lives: the site root for the dev
	// variant, the templates dir for the TLS variant.
	ScriptDir string `json:"script_dir"`

	// HomePage enables the /home route (TLS variant only).
	HomePage bool `json:"home_page"`

	Debug bool `json:"debug"`
}

// DevConfig returns the dev server defaults: plaintext HTTP on
// loopback, auth.js served from the site root.
func DevConfig(siteRoot string) *WebConfig {
	return &WebConfig{
		ListenHost:   "127.0.0.1",
		ListenPort:   DefaultPort,
		SSL:          false,
		SiteRoot:     siteRoot,
		TemplatesDir: filepath.Join(siteRoot, DefaultTemplatesDir),
		ScriptDir:    siteRoot,
		HomePage:     false,
		Debug:        true,
	}
}

// TLSConfig returns the TLS server defaults: HTTPS on all interfaces,
// certificate pair under certificates/, auth.js served from the
// templates dir.
func TLSConfig(siteRoot string) *WebConfig {
	return &WebConfig{
		ListenHost:   "0.0.0.0",
		ListenPort:   DefaultPort,
		SSL:          true,
		CertFile:     filepath.Join(siteRoot, DefaultCertFile),
		KeyFile:      filepath.Join(siteRoot, DefaultKeyFile),
		SiteRoot:     siteRoot,
		TemplatesDir: filepath.Join(siteRoot, DefaultTemplatesDir),
		ScriptDir:    filepath.Join(siteRoot, DefaultTemplatesDir),
		HomePage:     true,
		Debug:        true,
	}
}

// Addr returns the host:port the listener binds to.
func (c *WebConfig) Addr() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.ListenPort))
}

// TemplatePath resolves a template file name against the templates dir.
func (c *WebConfig) TemplatePath(name string) string {
	return filepath.Join(c.TemplatesDir, name)
}

// ScriptPath resolves the auth script location for this variant.
func (c *WebConfig) ScriptPath() string {
	return filepath.Join(c.ScriptDir, AuthScript)
}
