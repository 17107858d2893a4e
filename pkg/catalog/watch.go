package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog at path whenever the file is written or
// replaced. Each successful load is passed to onReload; load failures go to
// onError and the previous catalog stays in effect. Watch blocks until ctx
// is done.
func Watch(ctx context.Context, path string, onReload func(*Catalog), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed watching %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cat, err := Load(path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onReload(cat)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
