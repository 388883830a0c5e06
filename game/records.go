package game

import (
	"encoding/json"
	"fmt"

	"github.com/meghashyamc/flickcap/bottlecap"
	"github.com/meghashyamc/flickcap/logger"
	"github.com/quasilyte/gdata"
)

const bestFlickItem = "best_flick"

// recordStore is the slice of *gdata.Manager the records need
type recordStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type FlickRecord struct {
	Distance     float64 `json:"distance"`
	Bounces      int     `json:"bounces"`
	ReleaseSpeed float64 `json:"releaseSpeed"`
}

// RecordKeeper remembers the longest flick across runs. Without a store it
// keeps the record for the current run only.
type RecordKeeper struct {
	store  recordStore
	best   FlickRecord
	logger logger.Logger
}

func openRecordStore(appName string) (recordStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open data storage for %q: %w", appName, err)
	}
	return m, nil
}

func NewRecordKeeper(store recordStore, log logger.Logger) *RecordKeeper {
	return &RecordKeeper{
		store:  store,
		logger: log,
	}
}

func (r *RecordKeeper) Load() {
	if r.store == nil {
		return
	}

	data, err := r.store.LoadItem(bestFlickItem)
	if err != nil {
		r.logger.Warn("could not load best flick", "err", err)
		return
	}
	if data == nil {
		// Nothing saved yet
		return
	}

	var loaded FlickRecord
	if err := json.Unmarshal(data, &loaded); err != nil {
		r.logger.Warn("could not parse saved best flick", "err", err)
		return
	}

	r.best = loaded
	r.logger.Debug("best flick loaded", "distance", loaded.Distance)
}

func (r *RecordKeeper) save() error {
	if r.store == nil {
		return nil
	}

	data, err := json.Marshal(r.best)
	if err != nil {
		return fmt.Errorf("failed to encode best flick: %w", err)
	}
	if err := r.store.SaveItem(bestFlickItem, data); err != nil {
		return fmt.Errorf("failed to save best flick: %w", err)
	}
	return nil
}

// Submit records a settled flick and reports whether it is a new best. The
// record is updated in memory even when saving fails.
func (r *RecordKeeper) Submit(stats bottlecap.FlickStats) (bool, error) {
	if stats.Distance <= r.best.Distance {
		return false, nil
	}

	r.best = FlickRecord{
		Distance:     stats.Distance,
		Bounces:      stats.Bounces,
		ReleaseSpeed: stats.ReleaseSpeed,
	}
	return true, r.save()
}

func (r *RecordKeeper) Best() FlickRecord {
	return r.best
}

func (r *RecordKeeper) BestText() string {
	if r.best.Distance == 0 {
		return "Best Flick: -"
	}
	return fmt.Sprintf("Best Flick: %.0f px (%s)", r.best.Distance, bouncesText(r.best.Bounces))
}

func bouncesText(n int) string {
	if n == 1 {
		return "1 bounce"
	}
	return fmt.Sprintf("%d bounces", n)
}
