package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// Fetcher loads the full record list.
type Fetcher interface {
	FetchDetections(ctx context.Context) ([]domain.DisplayRecord, error)
}

// View holds one session's records and the views derived from them. Every
// mutation recomputes the summary; all methods are safe for concurrent use.
type View struct {
	logger *slog.Logger
	once   sync.Once

	mu       sync.RWMutex
	records  []domain.DisplayRecord
	filter   analytics.Filter
	visible  []domain.DisplayRecord
	selected int // index into visible, -1 when nothing is selected
	summary  analytics.Summary
}

// NewView creates an empty View.
func NewView(logger *slog.Logger) *View {
	v := &View{logger: logger}
	v.recompute()
	return v
}

// Load fetches the record list the first time it is called; later calls
// do nothing and return nil. A failed fetch is logged and leaves the view
// empty.
func (v *View) Load(ctx context.Context, f Fetcher) error {
	var err error
	v.once.Do(func() {
		var records []domain.DisplayRecord
		records, err = f.FetchDetections(ctx)
		if err != nil {
			v.logger.Warn("fetch detections failed, showing empty dashboard", "error", err)
			records = nil
		}
		v.SetRecords(records)
	})
	return err
}

// SetRecords replaces the record list. The current selection is kept when
// the record is still visible, otherwise the first record is selected.
func (v *View) SetRecords(records []domain.DisplayRecord) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.records = append([]domain.DisplayRecord(nil), records...)
	v.recompute()
}

// SetFilter narrows the visible records and recomputes the summary.
func (v *View) SetFilter(f analytics.Filter) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter = f
	v.recompute()
}

// Records returns the visible records in API order.
func (v *View) Records() []domain.DisplayRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]domain.DisplayRecord(nil), v.visible...)
}

// Selected returns the selected record, if any.
func (v *View) Selected() (domain.DisplayRecord, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.selected < 0 {
		return domain.DisplayRecord{}, false
	}
	return v.visible[v.selected], true
}

// Select marks the visible record with the given id as selected.
func (v *View) Select(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, r := range v.visible {
		if r.ID == id {
			v.selected = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

// Summary returns the derived views for the visible records.
func (v *View) Summary() analytics.Summary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.summary
}

// recompute rebuilds every derived field. Callers hold mu.
func (v *View) recompute() {
	var prevID string
	if v.selected >= 0 && v.selected < len(v.visible) {
		prevID = v.visible[v.selected].ID
	}

	v.visible = analytics.Apply(v.records, v.filter)
	if v.visible == nil {
		v.visible = []domain.DisplayRecord{}
	}

	v.selected = -1
	for i, r := range v.visible {
		if r.ID == prevID {
			v.selected = i
			break
		}
	}
	if v.selected < 0 && len(v.visible) > 0 {
		v.selected = 0
	}

	v.summary = analytics.Summarize(v.visible)
}
