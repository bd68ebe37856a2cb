package implementation

import (
	"errors"

	"github.com/plotstream/plotstream/loader"
	"github.com/plotstream/plotstream/series"
)

var StatsUnavailable = errors.New("stats unavailable")

// Status exposes the loader's published state over RPC so headless
// monitors can poll load progress without scraping the HTTP endpoints.
type Status struct {
	loader *loader.Loader
}

func NewStatus(l *loader.Loader) *Status {
	return &Status{loader: l}
}

func (s *Status) Progress() (*loader.State, error) {
	state := s.loader.State()
	return &state, nil
}

func (s *Status) Stats() (*series.Stats, error) {
	snapshot := s.loader.Snapshot()
	if snapshot.Stats == nil {
		return nil, StatsUnavailable
	}
	return snapshot.Stats, nil
}

func (s *Status) TraceCount() (int, error) {
	return len(s.loader.Snapshot().Traces), nil
}
