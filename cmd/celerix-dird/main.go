package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/celerix-dev/celerix-directory/internal/api"
	"github.com/celerix-dev/celerix-directory/internal/auth"
	"github.com/celerix-dev/celerix-directory/internal/config"
	"github.com/celerix-dev/celerix-directory/internal/directory"
	"github.com/celerix-dev/celerix-directory/internal/store"
	"github.com/celerix-dev/celerix-directory/internal/vault"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

func main() {
	fmt.Println("Starting Celerix Directory Daemon...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 1. Open the durable store
	fs, err := store.NewFileStore(filepath.Join(cfg.DataDir, "users.json"), cfg.MasterKeyBytes())
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	if cfg.MasterKey != "" {
		fmt.Println("At-rest encryption enabled for the store file.")
	}

	// 2. Import a legacy plaintext collection if requested
	if cfg.MigrateFrom != "" {
		legacy, err := store.NewFileStore(cfg.MigrateFrom, nil)
		if err != nil {
			log.Fatalf("Failed to open legacy store %s: %v", cfg.MigrateFrom, err)
		}
		if err := store.Migrate(legacy, fs); err != nil {
			log.Fatalf("Migration from %s failed: %v", cfg.MigrateFrom, err)
		}
		fmt.Printf("Migrated collection from %s\n", cfg.MigrateFrom)
	}

	dir := directory.New(fs)

	// 3. Bootstrap the first admin when the store is empty
	if cfg.BootstrapEmail != "" && cfg.BootstrapPassword != "" {
		users, err := dir.ListAll()
		if err != nil {
			log.Fatalf("Failed to read store for bootstrap: %v", err)
		}
		if len(users) == 0 {
			credential, err := auth.HashPassword(cfg.BootstrapPassword)
			if err != nil {
				log.Fatalf("Failed to hash bootstrap password: %v", err)
			}
			admin, err := dir.Create(cfg.BootstrapEmail, credential, "", schema.RoleAdmin)
			if err != nil {
				log.Fatalf("Failed to create bootstrap admin: %v", err)
			}
			fmt.Printf("Bootstrapped admin %s (%s)\n", admin.Email, admin.ID)
		}
	}

	// 4. Assemble the HTTP API
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	h := &api.Handler{Directory: dir, Tokens: tokens}
	router := api.NewRouter(h)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	// 5. Setup TLS
	if !cfg.DisableTLS {
		fmt.Println("Generating self-signed certificate for internal TLS...")
		cert, err := vault.GenerateSelfSignedCert()
		if err != nil {
			log.Fatalf("Failed to generate TLS certificate: %v", err)
		}
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
		fmt.Println("TLS encryption enabled.")
	} else {
		fmt.Println("TLS encryption disabled (CELERIX_DIR_DISABLE_TLS=true).")
	}

	// 6. Serve
	go func() {
		fmt.Printf("Directory API listening on :%s\n", cfg.HTTPPort)
		var err error
		if srv.TLSConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// 7. Graceful shutdown: let in-flight writes finish before exiting
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutdown signal received. Draining requests...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	fmt.Println("Directory stopped.")
}
