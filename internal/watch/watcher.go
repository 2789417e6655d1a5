// Package watch reports when files change on disk. The edit commands use it
// to notice when the editor saved the file they opened.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rofipaste/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileModification represents a file event detected by the watcher
type FileModification struct {
	Path      string
	Info      os.FileInfo
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors files for changes using fsnotify. Files are watched
// through their parent directory so editors that save by renaming a
// temporary file over the original are still seen.
type Watcher struct {
	// Absolute paths of the files being watched
	files map[string]struct{}

	// Channel to receive file modifications
	fileModChan chan FileModification

	// Channel to signal stop
	stopChan chan struct{}
	done     chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a new file watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		files:       map[string]struct{}{},
		fileModChan: make(chan FileModification, 10),
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddFile watches path. The file itself may not exist yet but its folder
// must.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.mutex.Lock()
	w.files[abs] = struct{}{}
	w.mutex.Unlock()
	log.LogWithFields(log.F("file", abs)).Debug("Watching file")
	return nil
}

// FileChannel returns the channel that delivers file modification events.
// It is closed once the watcher stops.
func (w *Watcher) FileChannel() <-chan FileModification {
	return w.fileModChan
}

func (w *Watcher) watched(path string) bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	_, ok := w.files[path]
	return ok
}

// Start begins the file watching process
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.fileModChan)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.watched(event.Name) {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				// Renamed away, the replacement shows up as its own event
				if !os.IsNotExist(err) {
					log.LogWithFields(log.F("file", event.Name), log.F("error", err)).Warn("Error stating file")
				}
				continue
			}

			mod := FileModification{
				Path:      event.Name,
				Info:      info,
				Timestamp: time.Now(),
				Op:        event.Op,
			}

			select {
			case w.fileModChan <- mod:
			default:
				log.LogWithFields(log.F("file", event.Name)).Warn("Event channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Warn("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher and waits for its event loop to exit
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		w.mutex.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	w.mutex.Unlock()

	<-w.done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Warn("Error closing fsnotify watcher")
	}
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// WaitForWrite starts watching path, calls open, then blocks until path is
// written or ctx is done. open is typically what launches the editor, so a
// save that happens before it returns is not missed.
func WaitForWrite(ctx context.Context, path string, open func() error) (FileModification, error) {
	w, err := New()
	if err != nil {
		return FileModification{}, err
	}
	if err := w.AddFile(path); err != nil {
		w.fsWatcher.Close()
		return FileModification{}, err
	}
	if err := w.Start(); err != nil {
		w.fsWatcher.Close()
		return FileModification{}, err
	}
	defer w.Stop()

	if open != nil {
		if err := open(); err != nil {
			return FileModification{}, err
		}
	}

	select {
	case mod, ok := <-w.FileChannel():
		if !ok {
			return FileModification{}, fmt.Errorf("watcher closed before %s changed", path)
		}
		return mod, nil
	case <-ctx.Done():
		return FileModification{}, ctx.Err()
	}
}
