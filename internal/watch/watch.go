// Package watch re-mines a log file whenever it changes.
//
// Structure mining is a whole-corpus batch operation, so the watcher does
// not tail incrementally: every change triggers a full re-read of the file
// and a fresh tree. Bursts of writes are debounced so a chatty logger does
// not cause a re-mine per line.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/logsift/logsift/internal/miner"
	"github.com/logsift/logsift/internal/tree"
)

// DefaultDebounce is the quiet period after a write before re-mining.
const DefaultDebounce = 500 * time.Millisecond

// Options configures the watcher behavior.
type Options struct {
	FilePath string                      // Path to the log file
	Debounce time.Duration               // Quiet period before re-mining (DefaultDebounce if zero)
	OnUpdate func([]tree.Template) error // Called with the refined templates after each mine
}

// Watcher re-mines a single log file on change.
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher
}

// New creates a new Watcher with the given options.
func New(opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Watcher{opts: opts}
}

// Run mines the file once, then blocks re-mining on every change until the
// context is cancelled or an error occurs.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.mine(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	w.watcher = watcher
	defer watcher.Close()

	if err := watcher.Add(w.opts.FilePath); err != nil {
		return err
	}

	return w.watch(ctx)
}

// mine runs the full pipeline over the file and reports the templates.
func (w *Watcher) mine() error {
	m := miner.New()
	tr, err := m.Run([]string{w.opts.FilePath})
	if err != nil {
		return err
	}
	return w.opts.OnUpdate(tr.Templates())
}

// watch monitors the file and re-mines after each quiet period.
func (w *Watcher) watch(ctx context.Context) error {
	timer := time.NewTimer(w.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timer.C:
			if err := w.mine(); err != nil {
				return err
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			if err := w.handleEvent(ctx, event, timer); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// handleEvent processes a file system event.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event, timer *time.Timer) error {
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		resetTimer(timer, w.opts.Debounce)
		return nil

	case event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename:
		// Log rotation: wait for the path to reappear, then re-mine.
		if err := w.waitReopen(ctx); err != nil {
			return err
		}
		resetTimer(timer, w.opts.Debounce)
		return nil
	}

	return nil
}

// waitReopen waits for the rotated file to reappear and re-adds it to the
// watcher.
func (w *Watcher) waitReopen(ctx context.Context) error {
	timeout := time.After(10 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			return fmt.Errorf("timeout waiting for rotated file to reappear")
		case <-ticker.C:
			if _, err := os.Stat(w.opts.FilePath); err != nil {
				continue
			}
			if err := w.watcher.Add(w.opts.FilePath); err != nil {
				return fmt.Errorf("failed to watch rotated file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "\n==> File rotated, mining new file <==\n")
			return nil
		}
	}
}

// resetTimer restarts a possibly-fired timer without leaking its tick.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
