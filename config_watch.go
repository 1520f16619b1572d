package brushrt

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher re-parses a config file whenever it is written and delivers
// valid results on Updates. Only the latest pending config is kept.
type ConfigWatcher struct {
	Updates <-chan Config

	path    string
	updates chan Config
	watcher *fsnotify.Watcher
	logger  Logger
	done    chan struct{}
}

// WatchConfig watches the directory holding path, since editors often
// replace files instead of writing them in place.
func WatchConfig(path string, logger Logger) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	updates := make(chan Config, 1)
	w := &ConfigWatcher{
		Updates: updates,
		path:    abs,
		updates: updates,
		watcher: fsWatch,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.start()
	return w, nil
}

func (w *ConfigWatcher) start() {
	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("config watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

func (w *ConfigWatcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warnf("config reload: %v", err)
		return
	}
	if len(data) == 0 {
		// Truncated mid-write; the following write event carries the content.
		return
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		w.logger.Warnf("config reload rejected: %v", err)
		return
	}
	w.logger.Infof("config reloaded from %s", w.path)

	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
	}
}

func (w *ConfigWatcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}
