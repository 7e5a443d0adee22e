package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// FileWatcher reports sample record changes in the data directory
type FileWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	events  chan model.FileEvent
}

func NewFileWatcher(dir string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		dir:     dir,
		events:  make(chan model.FileEvent, 100),
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only sample records; renames into place arrive as Create
			if filepath.Ext(event.Name) != model.SampleExt {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			select {
			case fw.events <- model.FileEvent{Path: event.Name, Operation: event.Op.String()}:
			default:
				util.LogDebugf("File event dropped, queue full: %s", event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

func (fw *FileWatcher) Events() <-chan model.FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
