package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/brosephtech/descgen/internal/logger"
)

// New creates a Watcher on inputDir that invokes handler for every new video.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(inputDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  w,
	}, nil
}
