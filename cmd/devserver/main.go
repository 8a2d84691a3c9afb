// Dev server for authpages: plaintext HTTP on loopback
package main

import (
	"context"
	"log"
	"os"

	"github.com/vabxic/authpages/internal/config"
	"github.com/vabxic/authpages/internal/web"
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	// The dev variant resolves everything against the working
	// directory: templates/ for pages, auth.js at the root.
	root, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to resolve working directory: %v", err)
	}

	cfg := config.DevConfig(root)
	server := web.NewServer(cfg)

	if cfg.Debug {
		if err := server.StartReloadWatcher(context.Background()); err != nil {
			log.Printf("Template reload watcher disabled: %v", err)
		}
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Web server failed: %v", err)
	}
}
