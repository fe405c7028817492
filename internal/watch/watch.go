// Package watch wraps fsnotify behind a small event API used by the
// watch command to rebuild sources when they change on disk.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op is a bitmask of file operations observed on a watched path.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Has reports whether the mask includes the given operation.
func (o Op) Has(op Op) bool { return o&op != 0 }

// Event is a single change notification for a watched path.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers OS-native change notifications for registered paths.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// New creates a Watcher and starts its delivery loop.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				close(fw.evC)
				return
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			if ev.Op&fsnotify.Chmod != 0 {
				op |= OpChmod
			}
			fw.evC <- Event{Path: ev.Name, Op: op}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

func (fw *Watcher) Events() <-chan Event  { return fw.evC }
func (fw *Watcher) Errors() <-chan error  { return fw.erC }
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }
func (fw *Watcher) Close() error          { return fw.w.Close() }
