package changelog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watcher regenerates the changelog whenever git refs change.
// It watches .git/HEAD, .git/packed-refs and the refs directory tree,
// debouncing bursts of events (a single commit touches several files).
type Watcher struct {
	gitDir   string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	onChange func() error
}

// NewWatcher creates a Watcher over the repository's .git directory.
// onChange is invoked once per debounced batch of ref changes, and once
// on startup for the initial generation.
func NewWatcher(repoRoot string, debounce time.Duration, onChange func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		gitDir:   filepath.Join(repoRoot, ".git"),
		debounce: debounce,
		watcher:  fsw,
		onChange: onChange,
	}, nil
}

// Watch runs until the context is cancelled. It performs an initial
// generation, then regenerates after each debounced batch of events.
// Generation failures are reported to stderr and do not stop watching.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addWatchPaths(); err != nil {
		return err
	}

	if err := w.onChange(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: initial changelog generation failed: %v\n", err)
	}

	trigger := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.collectEvents(ctx, trigger) })
	g.Go(func() error { return w.regenerateLoop(ctx, trigger) })

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// addWatchPaths registers the ref locations that change on commit or tag.
func (w *Watcher) addWatchPaths() error {
	if err := w.watcher.Add(w.gitDir); err != nil {
		return fmt.Errorf("watching %s: %w", w.gitDir, err)
	}

	// refs subdirectories exist lazily; missing ones are not fatal.
	for _, sub := range []string{"refs", "refs/heads", "refs/tags"} {
		path := filepath.Join(w.gitDir, sub)
		if _, err := os.Stat(path); err == nil {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
		}
	}

	return nil
}

// collectEvents forwards relevant fsnotify events to the trigger channel,
// collapsing bursts into a single pending trigger.
func (w *Watcher) collectEvents(ctx context.Context, trigger chan<- struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isRefEvent(event) {
				continue
			}
			logDebug("[changelog] ref change: %s", event)
			select {
			case trigger <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
		}
	}
}

// regenerateLoop waits for a trigger, debounces, then regenerates.
func (w *Watcher) regenerateLoop(ctx context.Context, trigger <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-trigger:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.debounce):
		}

		// Drain any trigger queued during the debounce window.
		select {
		case <-trigger:
		default:
		}

		if err := w.onChange(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: changelog regeneration failed: %v\n", err)
		}
	}
}

// isRefEvent reports whether the event concerns a ref or HEAD update.
func isRefEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)
	if name == "HEAD" || name == "packed-refs" {
		return true
	}
	return filepath.Base(filepath.Dir(event.Name)) == "heads" ||
		filepath.Base(filepath.Dir(event.Name)) == "tags"
}
