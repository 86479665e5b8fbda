package loader

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads each of paths whenever it is written or re-created and passes
// the result to onChange, which runs on the watcher goroutine. Decode errors
// are delivered too; the caller decides whether to keep the previous
// problem. A nil logger discards. stop releases the watcher and returns once
// the goroutine has exited; further calls are no-ops. onChange must not call
// stop.
func Watch(paths []string, logger *slog.Logger, onChange func(*Problem, error)) (stop func(), err error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("loader: watcher: %w", err)
	}

	// Watch the parent directories so editors that replace files are seen.
	watched := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		clean := filepath.Clean(p)
		watched[clean] = struct{}{}
		dir := filepath.Dir(clean)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("loader: watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				name := filepath.Clean(ev.Name)
				if _, ok := watched[name]; !ok {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					logger.Debug("instance changed", "path", name, "op", ev.Op.String())
					onChange(LoadFile(name))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "err", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() { close(done) })
		<-finished
	}

	return stop, nil
}
