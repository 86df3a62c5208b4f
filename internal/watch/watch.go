// Package watch reports debounced changes to a single file.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before the
// change callback runs.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by Run on a closed Watcher.
var ErrClosed = errors.New("watch: watcher closed")

// Watcher calls a function after a file has been written, created or
// renamed into place. Bursts of events inside the debounce window collapse
// into one call.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func() error
	onError  func(error)

	closeOnce sync.Once
	closed    chan struct{}
}

// New watches path. The containing directory is watched rather than the
// file itself so editors that save by rename are still seen. onError may
// be nil; debounce <= 0 uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange func() error, onError func(error)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fs.Close()
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fs:       fs,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
		closed:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closed)
		err = w.fs.Close()
	})
	return err
}

// Run delivers change callbacks until ctx is done or the watcher is
// closed. It returns nil when ctx ends and ErrClosed after Close.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
		timer, fire = nil, nil
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.closed:
			return ErrClosed

		case ev, ok := <-w.fs.Events:
			if !ok {
				return ErrClosed
			}
			if !w.matches(ev) {
				continue
			}
			stop()
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if err := w.onChange(); err != nil {
				w.report(err)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrClosed
			}
			w.report(err)
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return abs == w.path
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
