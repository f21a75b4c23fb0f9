package dataset

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// geoRefreshInterval is how often a remote GeoJSON source is re-fetched.
const geoRefreshInterval = 24 * time.Hour

// reloadDebounce coalesces the burst of filesystem events an editor or a
// data pipeline emits while rewriting a CSV.
const reloadDebounce = 500 * time.Millisecond

// refreshGeoPeriodically re-fetches a remote GeoJSON layer on a fixed
// schedule. A failed refresh keeps the current snapshot.
func (m *Manager) refreshGeoPeriodically() {
	defer m.wg.Done()

	ticker := time.NewTicker(geoRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.reload("geojson refresh")
		case <-m.shutdownChan:
			return
		}
	}
}

// watchDataDir starts a filesystem watch on the data directory so that
// replacing a CSV takes effect without a restart.
func (m *Manager) watchDataDir() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(m.config.DataDir); err != nil {
		_ = watcher.Close()
		return err
	}

	m.wg.Add(1)
	go m.consumeWatchEvents(watcher)
	return nil
}

func (m *Manager) consumeWatchEvents(watcher *fsnotify.Watcher) {
	defer m.wg.Done()
	defer watcher.Close() // nolint

	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if !isDataFile(event.Name) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(reloadDebounce)
			} else {
				debounce.Reset(reloadDebounce)
			}
			pending = debounce.C
		case <-pending:
			pending = nil
			m.reload("data file change")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if m.logger != nil {
				m.logger.Warn("data directory watch error", "error", err)
			}
		case <-m.shutdownChan:
			return
		}
	}
}

func isDataFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".json":
		return true
	default:
		return false
	}
}

// reload builds a fresh snapshot and swaps it in. Reload failures after
// startup are logged and the previous snapshot stays live.
func (m *Manager) reload(reason string) {
	snapshot, err := m.load()
	if err != nil {
		if m.logger != nil {
			m.logger.Error("dataset reload failed, keeping previous snapshot",
				"reason", reason, "error", err)
		}
		return
	}
	m.setSnapshot(snapshot)
	if m.logger != nil {
		m.logger.Info("datasets reloaded", "reason", reason, "rows", len(snapshot.Rows))
	}
}
