// Package shaderwatch reports edits to shader sources on disk so a running
// example can relink its programs.
package shaderwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Extensions that count as shader sources
var Extensions = []string{".vert", ".frag", ".glsl"}

// Watcher forwards the base names of changed shader files.
// Names are queued until the render thread collects them with Pending.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// New starts watching dir. Close must be called to stop the goroutine.
func New(dir string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		logger:  logger,
	}
	w.wg.Add(1)
	go w.loop()

	logger.Info("watching shaders", "dir", dir)
	return w, nil
}

// IsShaderSource reports whether name has a shader extension
func IsShaderSource(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Relevant reports whether an event should trigger a reload.
// Editors often save by renaming a temp file over the original, which
// shows up as Create rather than Write.
func Relevant(event fsnotify.Event) bool {
	if !IsShaderSource(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !Relevant(event) {
				continue
			}
			name := filepath.Base(event.Name)
			select {
			case w.changes <- name:
			default:
				// a reload is already queued; the render thread rereads every source anyway
				w.logger.Debug("shader change dropped, queue full", "file", name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// Pending drains every queued change without blocking, deduplicated and in
// arrival order.
func (w *Watcher) Pending() []string {
	var names []string
	seen := map[string]bool{}
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
