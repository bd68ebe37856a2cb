package governor

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/gorpc"
	"go.etcd.io/bbolt"

	"github.com/plotstream/plotstream/charting"
	"github.com/plotstream/plotstream/config"
	"github.com/plotstream/plotstream/generators"
	"github.com/plotstream/plotstream/loader"
	"github.com/plotstream/plotstream/overlay"
	"github.com/plotstream/plotstream/series"
	"github.com/plotstream/plotstream/storage"
	"github.com/plotstream/plotstream/telemetry/server"
	"github.com/plotstream/plotstream/telemetry/services"
	"github.com/plotstream/plotstream/telemetry/services/implementation"
	"github.com/plotstream/plotstream/theme"
	"github.com/plotstream/plotstream/trace"
	"github.com/plotstream/plotstream/utils"
)

// Governor owns the moving parts: it builds the series collection from
// config, drives the loader, and keeps the HTTP and RPC frontends fed.
// Config file changes and the cron refresh schedule both restart the
// current load pass.
type Governor struct {
	Config    *config.Config
	Theme     *theme.Theme
	Loader    *loader.Loader
	db        *bbolt.DB
	charts    *charting.Service
	rpcServer *gorpc.Server
	watcher   *fsnotify.Watcher
	scheduler *cron.Cron
	mtx       sync.Mutex
	wg        sync.WaitGroup
	passStart time.Time
	quit      chan struct{}
}

func NewGovernor(cfg *config.Config) *Governor {
	if len(cfg.Series) == 0 && len(cfg.Datasets) == 0 {
		log.Fatal("No series or datasets configured!")
		return nil
	}
	th, found := theme.Preset(cfg.Theme)
	if !found {
		log.WithField("theme", cfg.Theme).Warnln("Unknown theme, using light")
		th = &theme.Light
	}
	return &Governor{
		Config: cfg,
		Theme:  th,
		Loader: loader.New(th),
	}
}

func (g *Governor) Start() error {
	if g.quit != nil {
		return nil
	}
	quit := make(chan struct{})
	g.quit = quit
	db, err := storage.GetDB()
	if err != nil {
		return err
	}
	g.db = db
	g.Loader.OnProgress = g.logProgress
	g.Loader.OnComplete = g.saveReport
	g.startPass()
	if g.Config.RPCAddress != "" {
		registry := services.NewRegistry()
		registry.AddService("Status", implementation.NewStatus(g.Loader))
		g.rpcServer = server.NewServer(g.Config.RPCAddress, registry)
		if err := g.rpcServer.Start(); err != nil {
			return err
		}
	}
	if g.Config.RefreshSchedule != "" {
		g.scheduler = cron.New()
		if _, err := g.scheduler.AddFunc(g.Config.RefreshSchedule, g.Refresh); err != nil {
			return err
		}
		g.scheduler.Start()
	}
	if g.watcher, err = utils.NewFileWatcher(config.Path(), g.configReload); err != nil {
		return err
	}
	g.charts = g.buildChartingService()
	g.wg.Add(1)
	go g.serveCharts(quit)
	return nil
}

func (g *Governor) Stop() {
	if g.quit == nil {
		return
	}
	close(g.quit)
	g.quit = nil
	if g.scheduler != nil {
		g.scheduler.Stop()
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.rpcServer != nil {
		g.rpcServer.Stop()
	}
	g.Loader.Reset()
	g.Loader.Wait()
	g.wg.Wait()
	if g.db != nil {
		_ = g.db.Close()
	}
}

// Refresh regenerates the series collection and restarts the load pass.
func (g *Governor) Refresh() {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	log.Println("Refreshing series collection")
	g.Loader.Reset()
	g.startPass()
}

func (g *Governor) configReload() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Warnln("Error reloading config")
		return
	}
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.Config = cfg
	log.Println("Config reloaded")
	g.Loader.Reset()
	g.startPass()
}

func (g *Governor) startPass() {
	configs := g.buildConfigs()
	g.passStart = time.Now()
	g.Loader.Start(configs, loader.Progress{
		Enabled:           g.Config.Progressive.Enabled,
		ChunkSize:         g.Config.Progressive.ChunkSize,
		AnimationDuration: time.Duration(g.Config.Progressive.AnimationMS) * time.Millisecond,
		ShowProgress:      g.Config.Progressive.ShowProgress,
		ShowPhase:         g.Config.Progressive.ShowPhase,
		ShowDataStats:     g.Config.Progressive.ShowDataStats,
	})
}

func (g *Governor) buildConfigs() []series.Config {
	var configs []series.Config
	for pos := range g.Config.Series {
		spec := &g.Config.Series[pos]
		cfg, err := buildSeries(spec)
		if err != nil {
			log.WithFields(log.Fields{
				"series": spec.Name,
				"error":  err,
			}).Warnln("Skipping series")
			continue
		}
		configs = append(configs, *cfg)
	}
	for _, filePath := range g.Config.Datasets {
		cfg, err := series.LoadDataset(filePath)
		if err != nil {
			log.WithFields(log.Fields{
				"dataset": filePath,
				"error":   err,
			}).Warnln("Skipping dataset")
			continue
		}
		configs = append(configs, *cfg)
	}
	return configs
}

func buildSeries(spec *config.SeriesSpec) (*series.Config, error) {
	generator, err := generators.ByName(spec.Generator)
	if err != nil {
		return nil, err
	}
	mode, known := series.ModeByName(spec.Mode)
	if !known {
		return nil, fmt.Errorf("unknown mode %s", spec.Mode)
	}
	seed := spec.Seed
	if seed == 0 {
		// Unseeded series get fresh data on every pass, so the cron
		// refresh visibly regenerates the plot.
		seed = utils.RandomSeed()
	}
	cfg := &series.Config{
		Name: spec.Name,
		Data: generator(generators.Params{
			Points: spec.Points,
			Seed:   seed,
			Noise:  spec.Noise,
			Cycles: spec.Cycles,
		}),
		Mode:          mode,
		ConnectDots:   spec.ConnectDots,
		GradientLines: spec.GradientLines,
		Visible:       !spec.Hidden,
		ShowInLegend:  !spec.HideInLegend,
	}
	if spec.ColorFeature != "" || spec.ShowColorBar {
		marker := &series.MarkerStyle{
			ColorFeature: spec.ColorFeature,
			ShowColorBar: spec.ShowColorBar,
		}
		if spec.ColorScale != "" {
			marker.ColorScale = &series.ColorScale{Name: spec.ColorScale}
		}
		cfg.Marker = marker
	}
	return cfg, nil
}

func (g *Governor) logProgress(progress float64, phase string, pointsLoaded int) {
	fields := log.Fields{}
	if g.Config.Progressive.ShowProgress {
		fields["progress"] = fmt.Sprintf("%.2f%%", progress)
		fields["points"] = pointsLoaded
	}
	if g.Config.Progressive.ShowPhase {
		fields["phase"] = phase
	}
	if len(fields) == 0 {
		return
	}
	log.WithFields(fields).Debugln("Load progress")
}

func (g *Governor) saveReport(totalPoints int, stats series.Stats) {
	report := &storage.Report{
		Time:        time.Now(),
		Duration:    time.Since(g.passStart),
		TotalPoints: totalPoints,
		TraceCount:  len(g.Loader.Snapshot().Traces),
		Stats:       stats,
	}
	if err := storage.SaveReport(g.db, report); err != nil {
		log.WithError(err).Warnln("Error saving load report")
		return
	}
	log.WithFields(log.Fields{
		"points":   totalPoints,
		"duration": report.Duration,
	}).Println("Load pass complete")
}

func (g *Governor) buildChartingService() *charting.Service {
	layout := trace.BuildLayout(&trace.PlotConfig{
		Title:     g.Config.Plot.Title,
		XTitle:    g.Config.Plot.XTitle,
		YTitle:    g.Config.Plot.YTitle,
		Crosshair: g.Config.Plot.Crosshair,
	}, g.Theme)
	highlight := overlay.DefaultConfig(g.Theme)
	highlight.Enabled = g.Config.Highlight.Enabled
	if g.Config.Highlight.HighlightScale != 0 {
		highlight.HighlightScale = g.Config.Highlight.HighlightScale
	}
	if g.Config.Highlight.DimScale != 0 {
		highlight.DimScale = g.Config.Highlight.DimScale
	}
	if g.Config.Highlight.DimOpacity != 0 {
		highlight.DimOpacity = g.Config.Highlight.DimOpacity
	}
	return charting.NewService(g.db, g.Loader, highlight, layout, g.Config.ServerAddress)
}

func (g *Governor) serveCharts(quit chan struct{}) {
	defer g.wg.Done()
	errs := make(chan error, 1)
	go func() {
		errs <- g.charts.Start()
	}()
	select {
	case <-quit:
		if err := g.charts.Stop(); err != nil {
			log.WithError(err).Warnln("Error stopping charting service")
		}
		<-errs
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Charting service stopped")
		}
	}
}
