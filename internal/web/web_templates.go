// Package web provides the HTTP server and page routing for authpages
package web

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
)

// templateCache lazily parses page templates and keeps them until
// invalidated. Parsing stays at request time so a missing file shows
// up as a 500 on the page that needs it, not a startup failure.
type templateCache struct {
	dir  string
	mu   sync.RWMutex
	tmpl map[string]*template.Template
}

func newTemplateCache(dir string) *templateCache {
	return &templateCache{
		dir:  dir,
		tmpl: make(map[string]*template.Template),
	}
}

// get returns the parsed template for name, parsing it on first use.
func (tc *templateCache) get(name string) (*template.Template, error) {
	tc.mu.RLock()
	tmpl := tc.tmpl[name]
	tc.mu.RUnlock()
	if tmpl != nil {
		return tmpl, nil
	}

	tmpl, err := template.ParseFiles(filepath.Join(tc.dir, name))
	if err != nil {
		return nil, err
	}

	tc.mu.Lock()
	tc.tmpl[name] = tmpl
	tc.mu.Unlock()
	return tmpl, nil
}

// invalidate drops a cached template so the next render re-parses it.
func (tc *templateCache) invalidate(name string) {
	tc.mu.Lock()
	delete(tc.tmpl, name)
	tc.mu.Unlock()
}

// renderTemplate renders a page template into the response.
// The pages are static HTML, nothing is substituted.
func (s *WebServer) renderTemplate(c *gin.Context, name string) {
	tmpl, err := s.templates.get(name)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tmpl.Execute(c.Writer, nil); err != nil {
		log.Printf("[ERROR]:internal/web: rendering %s: %v", name, err)
	}
}

// renderError logs the failure and writes a plain error response
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[ERROR]:internal/web: Error %d: %s - %s", statusCode, message, errstring)
	c.String(statusCode, message)
}
