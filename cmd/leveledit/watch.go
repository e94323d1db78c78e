package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/fsnotify/fsnotify"
)

// Writes inside this window collapse into one event.
const debounceWindow = 100 * time.Millisecond

// Watcher reports level files that changed under a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !leveldata.IsLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default: // Drop while the previous error is unread
			}
		case <-w.closeCh:
			return
		}
	}
}

func cmdWatch(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("watch: expected at least one directory")
	}
	w, err := NewWatcher(args...)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	logger.Log.WithField("dirs", args).Info("Watching for level changes")
	return watchLoop(ctx, w, out)
}

// watchLoop validates every changed level until ctx is done.
func watchLoop(ctx context.Context, w *Watcher, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, err := validateFile(name, out); err != nil {
				logger.Log.WithError(err).WithField("file", name).Warn("Level failed to load")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Log.WithError(err).Warn("Watcher error")
		}
	}
}
