// internal/app/system/workers/assetwatch.go
package workers

import (
	"sync"
	"time"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"go.uber.org/zap"
)

// AssetWatcher is a background worker that re-audits the data root so that
// files removed or restored after startup show up in the logs.
type AssetWatcher struct {
	resolver *assets.Resolver
	labels   []assets.Selection
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	missing map[string]assets.Missing // keyed by path
	checked bool
}

// NewAssetWatcher creates a watcher over labels.
//
// Parameters:
//   - resolver: maps labels to files under the data root
//   - labels: selections to audit, normally every catalog label
//   - logger: zap logger for logging
//   - interval: how often to re-audit (e.g., 5 minutes)
func NewAssetWatcher(resolver *assets.Resolver, labels []assets.Selection, logger *zap.Logger, interval time.Duration) *AssetWatcher {
	return &AssetWatcher{
		resolver: resolver,
		labels:   labels,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
		missing:  map[string]assets.Missing{},
	}
}

// Start runs an initial audit and then begins the background loop.
func (w *AssetWatcher) Start() {
	w.Check()
	w.wg.Add(1)
	go w.run()
	w.log.Info("asset watcher started",
		zap.Duration("interval", w.interval),
		zap.Int("labels", len(w.labels)))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *AssetWatcher) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("asset watcher stopped")
}

func (w *AssetWatcher) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check audits once and logs only what changed since the previous audit:
// newly missing files at Warn, restored files at Info. It returns the
// current report.
func (w *AssetWatcher) Check() assets.Report {
	rep := assets.Audit(w.resolver, w.labels)

	now := make(map[string]assets.Missing, len(rep.Missing))
	for _, m := range rep.Missing {
		now[m.Path] = m
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for path, m := range now {
		if _, seen := w.missing[path]; !seen {
			w.log.Warn("report asset missing",
				zap.String("selection", string(m.Label)),
				zap.String("kind", m.Kind),
				zap.String("path", path))
		}
	}
	if w.checked {
		for path, m := range w.missing {
			if _, still := now[path]; !still {
				w.log.Info("report asset restored",
					zap.String("selection", string(m.Label)),
					zap.String("kind", m.Kind),
					zap.String("path", path))
			}
		}
	}

	w.missing = now
	w.checked = true
	return rep
}

// MissingCount returns how many files were missing at the last audit.
func (w *AssetWatcher) MissingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.missing)
}
