package viewer

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// startWatcher watches the shader file's directory and requests a reload when
// the file is written or recreated. The directory is watched rather than the
// file because editors that save via rename replace the inode, which would
// silently detach a per-file watch.
func (v *viewer) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(v.shaderPath)); err != nil {
		watcher.Close()
		return err
	}

	v.watchStop = make(chan struct{})
	target := filepath.Base(v.shaderPath)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-v.watchStop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					v.RequestReload()
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("viewer: shader watch error: %v", watchErr)
			}
		}
	}()

	return nil
}

// stopWatcher stops the watch goroutine if one is running.
func (v *viewer) stopWatcher() {
	if v.watchStop != nil {
		close(v.watchStop)
		v.watchStop = nil
	}
}
