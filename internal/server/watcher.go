package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"
)

// StartWatcher starts watching the config file for changes. When the file
// changes, the server's Reload callback is invoked. The watcher stops when
// the context is canceled. Returns an error if the watcher cannot be
// started.
func (s *Server) StartWatcher(ctx context.Context, configFile string) error {
	if s.Reload == nil {
		return errors.New("reload callback not set")
	}
	if configFile == "" {
		return errors.New("config file path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory containing the config file (not the file itself)
	// this catches atomic renames used by editors like vim/VSCode
	dir := filepath.Dir(configFile)
	filename := filepath.Base(configFile)

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching config file %s for changes", configFile)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] config watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// only react to events on our config file
				if filepath.Base(event.Name) != filename {
					continue
				}

				// react to write, create, rename events
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				// debounce rapid changes
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					if err := s.Reload(); err != nil {
						log.Printf("[WARN] failed to reload config: %v", err)
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] config watcher error: %v", err)
			}
		}
	}()

	return nil
}
