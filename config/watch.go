package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go-launchcontrol/debug"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the re-read config every time the file at path is
// written or created. The directory is watched (and created if missing)
// so editors that replace the file are seen too. Watch returns once the
// watcher is set up; the watcher stops when ctx is done.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	clean := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != clean || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := LoadFrom(path)
				if err != nil {
					debug.Log("config", "reload: %v", err)
					continue
				}
				debug.Log("config", "reloaded %s", path)
				fn(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				debug.Log("config", "watch: %v", err)
			}
		}
	}()
	return nil
}
