package workspace

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Watcher polls the workspace root and rescans files whose modification time
// changed. OnChange, if set, is called with every file that was rescanned and
// with the path of every file that disappeared (f is nil then).
type Watcher struct {
	ws           *Workspace
	stopCh       chan struct{}
	doneCh       chan struct{}
	startOnce    sync.Once
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time

	OnChange func(path string, f *File)
}

func NewWatcher(ws *Workspace, interval time.Duration) *Watcher {
	return &Watcher{
		ws:           ws,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

// Start begins polling in the background. Later calls do nothing.
func (w *Watcher) Start() {
	w.startOnce.Do(func() { go w.run() })
}

// Stop ends polling and waits for a scan in progress to finish. It may be
// called more than once, and before Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.startOnce.Do(func() { close(w.doneCh) })
	})
	<-w.doneCh
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Poll()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Poll performs a single scan. It is not safe to call concurrently with a
// started watcher.
func (w *Watcher) Poll() {
	current := make(map[string]bool)

	filepath.WalkDir(w.ws.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != w.ws.Root() && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.ws.Tracks(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		current[path] = true

		lastMod, known := w.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			return nil
		}
		w.modTimes[path] = info.ModTime()
		f, err := w.ws.ScanFile(path)
		if err != nil {
			log.Warningf("%s", err)
			return nil
		}
		if w.OnChange != nil {
			w.OnChange(path, f)
		}
		return nil
	})

	for path := range w.modTimes {
		if current[path] {
			continue
		}
		delete(w.modTimes, path)
		w.ws.RemoveFile(path)
		if w.OnChange != nil {
			w.OnChange(path, nil)
		}
	}
}
