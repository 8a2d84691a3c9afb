package web

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vabxic/authpages/internal/config"
)

func TestTemplateCacheInvalidate(t *testing.T) {
	root := writeSite(t)
	s := NewServer(config.DevConfig(root))

	w := serve(t, s, "http://localhost:5000/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "landing") {
		t.Fatalf("initial render failed: status %d body %q", w.Code, w.Body.String())
	}

	// A change on disk is invisible while the parsed template is cached
	landing := filepath.Join(root, "templates", "landing_page.html")
	if err := os.WriteFile(landing, []byte("<html><body>edited</body></html>"), 0o644); err != nil {
		t.Fatalf("rewriting template: %v", err)
	}
	w = serve(t, s, "http://localhost:5000/")
	if strings.Contains(w.Body.String(), "edited") {
		t.Fatalf("cached template was re-read without invalidation")
	}

	s.templates.invalidate("landing_page.html")
	w = serve(t, s, "http://localhost:5000/")
	if !strings.Contains(w.Body.String(), "edited") {
		t.Errorf("render after invalidation = %q, want edited content", w.Body.String())
	}
}

func TestReloadWatcher(t *testing.T) {
	root := writeSite(t)
	s := NewServer(config.DevConfig(root))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.StartReloadWatcher(ctx); err != nil {
		t.Fatalf("starting reload watcher: %v", err)
	}

	// Prime the cache
	if w := serve(t, s, "http://localhost:5000/"); w.Code != http.StatusOK {
		t.Fatalf("initial render failed: status %d", w.Code)
	}

	landing := filepath.Join(root, "templates", "landing_page.html")
	if err := os.WriteFile(landing, []byte("<html><body>reloaded</body></html>"), 0o644); err != nil {
		t.Fatalf("rewriting template: %v", err)
	}

	// The watcher debounces events, poll until the new content shows up
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		w := serve(t, s, "http://localhost:5000/")
		if strings.Contains(w.Body.String(), "reloaded") {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("template change never picked up by reload watcher")
}
