package watcher

import (
	"github.com/vanderheijden86/ariapatterns/pkg/config"
)

// WatchConfig starts a watcher on the config file at path that re-reads it
// after every change. apply receives the new configuration, or the load
// error, in which case the previous configuration should stay in effect.
func WatchConfig(path string, apply func(config.Config, error), opts ...WatcherOption) (*Watcher, error) {
	reload := func() {
		apply(config.LoadFrom(path))
	}
	opts = append(opts, WithOnChange(reload))
	w, err := NewWatcher(path, opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}
