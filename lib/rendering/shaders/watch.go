package shaders

import (
	"time"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/fosdem/kwartel/lib/log"
	"github.com/jhenstridge/go-inotify"
)

// Watch blocks on inotify events for the override shader files and calls
// request after either file has been rewritten. The render loop picks the
// request up between frames. Meant to run in its own goroutine.
func Watch(cfg *config.ShaderCfg, request func()) {
	logger := log.For("shaders")

	watcher, err := inotify.NewWatcher()
	if err != nil {
		logger.Error("Could not create inotify watcher: " + err.Error())
		return
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	for _, path := range []string{string(cfg.Vertex), string(cfg.Fragment)} {
		_, err = watcher.Watch(path)
		if err != nil {
			logger.Error("Could not watch " + path + ": " + err.Error())
			return
		}
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE != 0 {
			logger.Debug("Rebuilding shader program due to inotify event")
			// editors often write the pair back to back, give the
			// second file a moment to land
			time.Sleep(100 * time.Millisecond)
			request()
		}
	}
}
