// Package web provides a read-only HTTP server over a parsed journal. It
// exposes the account listing and the balance report as JSON and reloads
// the journal whenever the ledger file changes on disk.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/ledger/loader"
	"github.com/robinvdvleuten/ledger/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	WatchEnabled bool

	// ledgerFile is the file path passed to New, used for loading and
	// watching.
	ledgerFile string

	mu      sync.RWMutex
	current *loader.Result
}

func New(port int, ledgerFile string) *Server {
	return &Server{
		Port:       port,
		Host:       "127.0.0.1",
		ledgerFile: ledgerFile,
	}
}

// Start loads the journal, optionally starts the file watcher, and serves
// until the listener fails or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if s.ledgerFile == "" {
		return fmt.Errorf("ledger file is required")
	}

	loadTimer := timer.Child(fmt.Sprintf("web.load %s", filepath.Base(s.ledgerFile)))
	err := s.reload(ctx)
	loadTimer.End()
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/journal", s.handleGetJournal)
	mux.HandleFunc("GET /api/accounts", s.handleGetAccounts)
	mux.HandleFunc("GET /api/balances", s.handleGetBalances)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.Host, s.Port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// reload loads or reloads the journal from disk.
// Caller must NOT hold the mutex.
func (s *Server) reload(ctx context.Context) error {
	result, err := loader.Load(ctx, s.ledgerFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = result
	s.mu.Unlock()

	return nil
}

// startWatcher starts a file watcher on the ledger file and reloads the
// journal when it changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.ledgerFile); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.ledgerFile, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing. Editors often
// write files in multiple steps, and atomic saves show up as remove/rename.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	const debounceDelay = 100 * time.Millisecond

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

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if err := s.reload(ctx); err != nil {
					log.Printf("Failed to reload journal: %v", err)
					return
				}
				// Atomic saves replace the inode; re-add to keep watching.
				_ = watcher.Add(s.ledgerFile)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// snapshot returns the currently loaded result.
func (s *Server) snapshot() *loader.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func writeJSONResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
