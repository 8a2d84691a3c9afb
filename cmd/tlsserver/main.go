// TLS server for authpages: HTTPS on all interfaces, port 5000
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/vabxic/authpages/internal/config"
	"github.com/vabxic/authpages/internal/web"
)

var appVersion = "-unset-"

// siteRoot resolves paths relative to the server binary itself, so
// templates/ and certificates/ are found no matter where the process
// is started from.
func siteRoot() string {
	exe, err := os.Executable()
	if err == nil {
		return filepath.Dir(exe)
	}
	wd, werr := os.Getwd()
	if werr != nil {
		log.Fatalf("Failed to resolve site root: %v / %v", err, werr)
	}
	return wd
}

func main() {
	config.AppVersion = appVersion

	cfg := config.TLSConfig(siteRoot())
	server := web.NewServer(cfg)

	if cfg.Debug {
		if err := server.StartReloadWatcher(context.Background()); err != nil {
			log.Printf("Template reload watcher disabled: %v", err)
		}
	}

	// A missing or unreadable certificate pair is fatal here, the
	// server never falls back to plaintext.
	if err := server.Start(); err != nil {
		log.Fatalf("Web server failed: %v", err)
	}
}
