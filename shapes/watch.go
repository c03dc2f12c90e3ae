package shapes

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors tend to fire several fs events per save; changes to the same file
// inside this window collapse into one event.
const watchDebounce = 100 * time.Millisecond

// Watcher reports shape files that change on disk, for hot reloading a
// Library while a game is running. Only yaml files surface on Events; other
// writes in the watched directories are ignored.
//
// The run goroutine is the sole sender on Events and Errors and closes both
// when it exits, so a consumer may keep receiving after Close and simply
// sees the channels drain and close.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
	once sync.Once

	Events chan string
	Errors chan error
}

// NewWatcher watches the given directories for shape file changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fs,
		done:   make(chan struct{}),
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call more than once. Events and Errors
// close once the run goroutine winds down, not during Close itself.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	emitted := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.wants(event, emitted) {
				continue
			}
			select {
			case w.Events <- event.Name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

// wants narrows an fsnotify event down to a debounced shape-file change,
// recording the emit time when it accepts one.
func (w *Watcher) wants(event fsnotify.Event, emitted map[string]time.Time) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if !isShapeFile(event.Name) {
		return false
	}

	now := time.Now()
	if last, ok := emitted[event.Name]; ok && now.Sub(last) < watchDebounce {
		return false
	}
	emitted[event.Name] = now
	return true
}
