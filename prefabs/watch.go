package prefabs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells drivers what a changed file affects.
type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeLevel
)

func (k ChangeKind) String() string {
	if k == ChangeLevel {
		return "level"
	}
	return "spec"
}

type Change struct {
	Path string
	Kind ChangeKind
}

const coalesceWindow = 100 * time.Millisecond

// Watcher reports changes to spec and level files in the watched
// directories. Bursts of events for the same file are coalesced.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories. Directories that do not exist
// are skipped; if none exist, fs.ErrNotExist is returned.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := 0
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
		watched++
	}
	if watched == 0 {
		_ = w.Close()
		return nil, fs.ErrNotExist
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
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
	})
	return err
}

type pendingChange struct {
	change Change
	due    time.Time
}

// run delivers a change once its file has been quiet for coalesceWindow, so
// a burst of writes is reported once, after the last one.
func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	pending := make(map[string]pendingChange)
	timer := time.NewTimer(coalesceWindow)
	timer.Stop()
	defer timer.Stop()
	var timerC <-chan time.Time

	schedule := func() {
		if len(pending) == 0 {
			timerC = nil
			return
		}
		var next time.Time
		for _, p := range pending {
			if next.IsZero() || p.due.Before(next) {
				next = p.due
			}
		}
		timer.Reset(time.Until(next))
		timerC = timer.C
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			pending[event.Name] = pendingChange{change: change, due: time.Now().Add(coalesceWindow)}
			schedule()

		case now := <-timerC:
			for path, p := range pending {
				if p.due.After(now) {
					continue
				}
				delete(pending, path)
				select {
				case w.Events <- p.change:
				case <-w.closeCh:
					return
				}
			}
			schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				continue
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	switch {
	case isSpecFile(path):
		return Change{Path: path, Kind: ChangeSpec}, true
	case isLevelFile(path):
		return Change{Path: path, Kind: ChangeLevel}, true
	}
	return Change{}, false
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isLevelFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
