// Package web provides the HTTP server and page routing for authpages
package web

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StartReloadWatcher watches the templates directory and drops cached
// templates when their files change, so edits show up on the next
// request without a restart. Meant for debug mode.
func (s *WebServer) StartReloadWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.Config.TemplatesDir); err != nil {
		watcher.Close()
		return err
	}

	go s.runReloadWatcher(ctx, watcher)

	log.Printf("Template reload watcher started on %s", s.Config.TemplatesDir)
	return nil
}

// runReloadWatcher is the main loop for the fsnotify watcher.
func (s *WebServer) runReloadWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	// Debounce: editors fire several events per save, coalesce
	// invalidations for the same file within 200ms
	var debounceMu sync.Mutex
	pending := make(map[string]*time.Timer)

	invalidate := func(name string) {
		debounceMu.Lock()
		defer debounceMu.Unlock()

		if timer, ok := pending[name]; ok {
			timer.Stop()
		}
		pending[name] = time.AfterFunc(200*time.Millisecond, func() {
			debounceMu.Lock()
			delete(pending, name)
			debounceMu.Unlock()

			s.templates.invalidate(name)
			log.Printf("Template cache invalidated: %s", name)
		})
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if strings.HasSuffix(name, ".html") {
				invalidate(name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Template watcher error: %v", err)
		}
	}
}
