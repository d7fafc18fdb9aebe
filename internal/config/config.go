// Package config loads the controller's static configuration and watches
// it for changes, the way whereabouts' pkg/reconciler.ConfigWatcher watches
// whereabouts.conf with fsnotify: every write/create event on the config
// file reloads it immediately (no debounce), no polling.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/juniper/cnm/internal/cnmlog"
)

// Config is the controller process's static configuration. Fields not
// sourced from the mounted ConfigMap fall back to the defaults Load
// starts from (namespace "default", log level "verbose", admission bind
// address ":8443", gRPC management port 50051, resync period 0).
type Config struct {
	Namespace          string
	LogLevel           string
	AdmissionBindAddr  string
	GrpcManagementPort int
	ResyncPeriodSec    int
}

func defaults() Config {
	return Config{
		Namespace:          "default",
		LogLevel:           "verbose",
		AdmissionBindAddr:  ":8443",
		GrpcManagementPort: 50051,
		ResyncPeriodSec:    0,
	}
}

// Load reads key=value lines from path (if it exists) over the defaults.
// A missing file is not an error -- the defaults apply, mirroring
// whereabouts' fallback to its flatfile IPAM config when the cron file is
// absent.
func Load(path string) (Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cnmlog.Verbosef("config %q not present, using defaults", path)
			return cfg, nil
		}
		return cfg, err
	}
	applyLines(&cfg, string(data))
	return cfg, nil
}

func applyLines(cfg *Config, contents string) {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch key {
		case "namespace":
			cfg.Namespace = val
		case "logLevel":
			cfg.LogLevel = val
		case "admissionBindAddr":
			cfg.AdmissionBindAddr = val
		case "grpcManagementPort":
			if n, err := strconv.Atoi(val); err == nil {
				cfg.GrpcManagementPort = n
			}
		case "resyncPeriodSec":
			if n, err := strconv.Atoi(val); err == nil {
				cfg.ResyncPeriodSec = n
			}
		}
	}
}

// Watcher reloads Config from a file whenever the file's directory
// receives a relevant fsnotify event and hands the new value to onChange.
type Watcher struct {
	path      string
	onChange  func(Config)
	fsWatcher *fsnotify.Watcher
}

// NewWatcher wires an fsnotify.Watcher to path's containing directory.
func NewWatcher(path string, onChange func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{path: path, onChange: onChange, fsWatcher: fw}, nil
}

// Start begins watching in a background goroutine. Call Close to stop.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				cnmlog.Errorf("reloading config %q: %v", w.path, err)
				continue
			}
			cnmlog.Verbosef("config %q reloaded", w.path)
			w.onChange(cfg)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			cnmlog.Errorf("config watcher error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
