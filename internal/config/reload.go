// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	seqlog "github.com/ManuGH/seqconf/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Holder holds the configuration document with atomic reloading capability.
// It provides thread-safe access and supports hot reloading from file or
// manual trigger via the operator API.
type Holder struct {
	mu         sync.RWMutex
	current    Document
	loader     *Loader
	configPath string
	watcher    *fsnotify.Watcher
	logger     zerolog.Logger

	// Reload notifications
	reloadMu        sync.RWMutex
	reloadListeners []chan<- Document
}

// NewHolder creates a new configuration holder with initial document.
func NewHolder(initial Document, loader *Loader, configPath string) *Holder {
	return &Holder{
		current:         initial,
		loader:          loader,
		configPath:      configPath,
		logger:          seqlog.WithComponent("config"),
		reloadListeners: make([]chan<- Document, 0),
	}
}

// Get returns the current document (thread-safe read).
func (h *Holder) Get() Document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Resolve resolves a profile against the current document.
func (h *Holder) Resolve(profile string) (*Resolved, error) {
	return Resolve(h.Get(), profile)
}

// Reload reloads the document from file and validates it. If loading or
// validation fails, the old document is kept and an error is returned, so
// updates are atomic: either the full document is valid and applied, or
// the old one remains unchanged.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str(seqlog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	newDoc, err := h.loader.Load()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str(seqlog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration")
		return fmt.Errorf("load config: %w", err)
	}

	h.mu.Lock()
	oldDoc := h.current
	h.current = newDoc
	h.mu.Unlock()

	h.notifyListeners(newDoc)
	h.logChanges(oldDoc, newDoc)

	h.logger.Info().
		Str(seqlog.FieldEvent, "config.reload_success").
		Msg("configuration reloaded successfully")

	return nil
}

// StartWatcher starts watching the config file for changes.
// If configPath is empty, this is a no-op (config comes from defaults/ENV only).
func (h *Holder) StartWatcher(ctx context.Context) error {
	if h.configPath == "" {
		h.logger.Info().
			Str(seqlog.FieldEvent, "config.watcher_disabled").
			Msg("config file watcher disabled (no config file)")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	h.watcher = watcher

	if err := watcher.Add(h.configPath); err != nil {
		_ = watcher.Close() // Ignore close error in error path
		return fmt.Errorf("watch config file: %w", err)
	}

	h.logger.Info().
		Str(seqlog.FieldEvent, "config.watcher_started").
		Str(seqlog.FieldConfigPath, h.configPath).
		Msg("watching config file for changes")

	go h.watchLoop(ctx)

	return nil
}

// watchLoop is the main file watcher loop.
func (h *Holder) watchLoop(ctx context.Context) {
	// Debounce timer to avoid multiple reloads for rapid file changes
	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(seqlog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			if h.watcher != nil {
				_ = h.watcher.Close()
			}
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			// Watch for Write and Create events (covers vim, nano, echo)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				h.logger.Debug().
					Str(seqlog.FieldEvent, "config.file_changed").
					Str("op", event.Op.String()).
					Msg("config file changed")

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					if err := h.Reload(ctx); err != nil {
						h.logger.Error().
							Err(err).
							Str(seqlog.FieldEvent, "config.auto_reload_failed").
							Msg("automatic config reload failed")
					}
				})
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(seqlog.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}

// Stop stops the config watcher (if running).
func (h *Holder) Stop() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

// RegisterListener registers a channel to receive reload notifications.
// The channel receives the new document whenever a reload succeeds.
// The caller is responsible for closing the channel.
func (h *Holder) RegisterListener(ch chan<- Document) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.reloadListeners = append(h.reloadListeners, ch)
}

// notifyListeners sends the new document to all registered listeners (non-blocking).
func (h *Holder) notifyListeners(newDoc Document) {
	h.reloadMu.RLock()
	defer h.reloadMu.RUnlock()

	for _, ch := range h.reloadListeners {
		select {
		case ch <- newDoc:
		default:
			h.logger.Warn().
				Str(seqlog.FieldEvent, "config.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}

// logChanges logs the differences between old and new documents for the
// fields operators most often flip between runs.
func (h *Holder) logChanges(old, newDoc Document) {
	if old.Algorithm.Aligner != newDoc.Algorithm.Aligner {
		h.logger.Info().
			Str("old", old.Algorithm.Aligner).
			Str("new", newDoc.Algorithm.Aligner).
			Msg("config changed: aligner")
	}
	if old.Algorithm.NumCores != newDoc.Algorithm.NumCores {
		h.logger.Info().
			Int("old", old.Algorithm.NumCores).
			Int("new", newDoc.Algorithm.NumCores).
			Msg("config changed: num_cores")
	}
	if old.GalaxyConfig != newDoc.GalaxyConfig {
		h.logger.Info().
			Str("old", old.GalaxyConfig).
			Str("new", newDoc.GalaxyConfig).
			Msg("config changed: galaxy_config")
	}
	if old.Distributed.RabbitMQVhost != newDoc.Distributed.RabbitMQVhost {
		h.logger.Info().
			Str("old", old.Distributed.RabbitMQVhost).
			Str("new", newDoc.Distributed.RabbitMQVhost).
			Msg("config changed: rabbitmq_vhost")
	}
	if len(old.CustomAlgorithms) != len(newDoc.CustomAlgorithms) {
		h.logger.Info().
			Int("old", len(old.CustomAlgorithms)).
			Int("new", len(newDoc.CustomAlgorithms)).
			Msg("config changed: custom algorithm count")
	}
}
