package loader

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/plotstream/plotstream/series"
	"github.com/plotstream/plotstream/theme"
	"github.com/plotstream/plotstream/trace"
)

const (
	DefaultChunkSize         = 50
	DefaultAnimationDuration = 50 * time.Millisecond
)

// Progress configures one load pass. AnimationDuration is cosmetic: it
// spaces chunk publications so progress is perceptible, and may be zero.
type Progress struct {
	Enabled           bool
	ChunkSize         int
	AnimationDuration time.Duration
	ShowProgress      bool
	ShowPhase         bool
	ShowDataStats     bool
}

// test seam for the failure path
var buildTraces = trace.Build

// Loader turns a series collection into published trace snapshots, either
// in one synchronous batch or chunk by chunk from a worker goroutine. At
// most one pass is in flight per Loader; stale passes are discarded by an
// epoch check before every publish.
type Loader struct {
	OnProgress ProgressFunc
	OnComplete CompleteFunc
	OnPublish  PublishFunc

	mtx      sync.Mutex
	wg       sync.WaitGroup
	theme    *theme.Theme
	epoch    uint64
	inFlight bool
	snapshot Snapshot
}

func New(th *theme.Theme) *Loader {
	return &Loader{
		theme:    th,
		snapshot: Snapshot{State: State{Phase: PhaseReady}},
	}
}

// Snapshot returns the last published snapshot.
func (l *Loader) Snapshot() Snapshot {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.snapshot
}

func (l *Loader) State() State {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.snapshot.State
}

// Start begins a load pass over the given series. If a pass is already in
// flight the call is a no-op. With progressive loading disabled the whole
// pass runs synchronously before Start returns.
func (l *Loader) Start(configs []series.Config, progress Progress) {
	l.mtx.Lock()
	if l.inFlight {
		l.mtx.Unlock()
		log.Debug("Load pass already in flight")
		return
	}
	l.inFlight = true
	epoch := l.epoch
	l.mtx.Unlock()
	if !progress.Enabled {
		l.loadAll(configs, epoch)
		return
	}
	l.wg.Add(1)
	go l.loadChunked(configs, progress, epoch)
}

// Reset returns the loader to Ready and invalidates any in-flight pass:
// the epoch bump makes its next publish attempt fail, so a stale pass can
// never overwrite newer state.
func (l *Loader) Reset() {
	l.mtx.Lock()
	l.epoch++
	l.inFlight = false
	l.snapshot = Snapshot{State: State{Phase: PhaseReady}}
	l.mtx.Unlock()
}

// Wait blocks until any running chunked pass has exited.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// publish replaces the visible snapshot, but only if the pass that built
// it is still current. Returns false when the pass has gone stale.
func (l *Loader) publish(epoch uint64, snapshot Snapshot, terminal bool) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if epoch != l.epoch {
		return false
	}
	l.snapshot = snapshot
	if terminal {
		l.inFlight = false
	}
	return true
}

func copyTraces(traces []trace.Trace) []trace.Trace {
	out := make([]trace.Trace, len(traces))
	copy(out, traces)
	return out
}

// loadAll is the fast path: no chunking, no delays, one publish.
func (l *Loader) loadAll(configs []series.Config, epoch uint64) {
	defer l.recoverPass(epoch)
	var traces []trace.Trace
	for index := range configs {
		traces = append(traces, buildTraces(&configs[index], index, l.theme)...)
	}
	stats := series.Collect(configs)
	l.finish(epoch, traces, stats)
}

func (l *Loader) loadChunked(configs []series.Config, progress Progress, epoch uint64) {
	defer l.wg.Done()
	defer l.recoverPass(epoch)
	chunkSize := progress.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	delay := progress.AnimationDuration
	total := series.TotalPoints(configs)
	loaded := 0
	var traces []trace.Trace
	for index := range configs {
		cfg := &configs[index]
		phase := loadingPhase(cfg.Name)
		for start := 0; start < len(cfg.Data); start += chunkSize {
			end := start + chunkSize
			if end > len(cfg.Data) {
				end = len(cfg.Data)
			}
			chunk := *cfg
			chunk.Data = cfg.Data[start:end]
			traces = append(traces, buildTraces(&chunk, index, l.theme)...)
			loaded += end - start
			snapshot := Snapshot{
				State: State{
					Progress:     percent(loaded, total),
					Phase:        phase,
					Generating:   true,
					PointsLoaded: loaded,
				},
				Traces: copyTraces(traces),
			}
			if !l.publish(epoch, snapshot, false) {
				log.WithField("phase", phase).Debug("Discarding stale load pass")
				return
			}
			l.notifyPublish(snapshot)
			if l.OnProgress != nil {
				l.OnProgress(snapshot.State.Progress, phase, loaded)
			}
			if delay > 0 {
				time.Sleep(delay)
			}
		}
	}
	stats := series.Collect(configs)
	l.finish(epoch, traces, stats)
}

// finish publishes the terminal Complete snapshot and fires OnComplete.
func (l *Loader) finish(epoch uint64, traces []trace.Trace, stats series.Stats) {
	snapshot := Snapshot{
		State: State{
			Progress:     100,
			Phase:        PhaseComplete,
			PointsLoaded: stats.TotalPoints,
			Complete:     true,
		},
		Traces: copyTraces(traces),
		Stats:  &stats,
	}
	if !l.publish(epoch, snapshot, true) {
		log.Debug("Discarding stale load pass at completion")
		return
	}
	l.notifyPublish(snapshot)
	log.WithFields(log.Fields{
		"traces": len(snapshot.Traces),
		"points": stats.TotalPoints,
		"memory": stats.Memory(),
	}).Info("Load pass complete")
	if l.OnComplete != nil {
		l.OnComplete(stats.TotalPoints, stats)
	}
}

// recoverPass is the single containment point for trace-building panics:
// the pass halts, the phase flips to Error and the last good snapshot
// stays published.
func (l *Loader) recoverPass(epoch uint64) {
	r := recover()
	if r == nil {
		return
	}
	log.WithField("reason", r).Error("Load pass failed")
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if epoch != l.epoch {
		return
	}
	l.snapshot.State.Phase = PhaseError
	l.snapshot.State.Generating = false
	l.inFlight = false
}

func (l *Loader) notifyPublish(snapshot Snapshot) {
	if l.OnPublish != nil {
		l.OnPublish(snapshot)
	}
}

func percent(loaded, total int) float64 {
	if total <= 0 {
		return 100
	}
	return float64(loaded) / float64(total) * 100
}
