package charting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ReneKroon/ttlcache"
	"github.com/go-echarts/go-echarts/charts"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"github.com/plotstream/plotstream/loader"
	"github.com/plotstream/plotstream/overlay"
	"github.com/plotstream/plotstream/storage"
	"github.com/plotstream/plotstream/trace"
)

const renderCacheTTL = 5 * time.Second

// Service serves the currently published trace snapshot as an HTML chart
// plus JSON progress, stats and load-history endpoints for UI chrome.
type Service struct {
	db        *bbolt.DB
	loader    *loader.Loader
	highlight overlay.Config
	layout    trace.Layout
	address   string
	cache     *ttlcache.Cache
	server    *http.Server
}

func NewService(db *bbolt.DB, l *loader.Loader, highlight overlay.Config, layout trace.Layout, address string) *Service {
	cs := &Service{
		db:        db,
		loader:    l,
		highlight: highlight,
		layout:    layout,
		address:   address,
		cache:     ttlcache.NewCache(),
	}
	router := httprouter.New()
	router.GET("/chart", cs.GetChart)
	router.GET("/progress", cs.GetProgress)
	router.GET("/stats", cs.GetStats)
	router.GET("/history", cs.GetHistory)
	cs.server = &http.Server{Addr: address, Handler: router}
	return cs
}

// Start serves until Stop is called; it returns http.ErrServerClosed on a
// clean shutdown.
func (cs *Service) Start() error {
	log.WithField("address", cs.address).Info("Charting service listening")
	return cs.server.ListenAndServe()
}

func (cs *Service) Stop() error {
	return cs.server.Close()
}

// BuildChart converts a trace set to a go-echarts line chart. Traces keep
// their own y arrays; the densest trace supplies the shared x axis.
func (cs *Service) BuildChart(traces []trace.Trace, refresh bool) *charts.Line {
	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{Title: cs.layout.Title},
		charts.ToolboxOpts{
			Show: true,
		},
	)
	var xAxis []float64
	for pos := range traces {
		if len(traces[pos].X) > len(xAxis) {
			xAxis = traces[pos].X
		}
	}
	lineChart.AddXAxis(xAxis)
	for pos := range traces {
		t := &traces[pos]
		if t.SkipHover && !t.ShowLegend {
			// Gradient filler segments would swamp the legend; the
			// renderer only needs the legend-bearing traces.
			continue
		}
		lineChart.AddYAxis(t.Name, t.Y)
	}
	if refresh {
		lineChart.AddJSFuncs("setTimeout(function(){location.reload();}, 5000);")
	}
	return lineChart
}

func (cs *Service) GetChart(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	startTime := time.Now()
	serviceParams, err := ParseServiceParams(request.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	cacheKey := fmt.Sprintf("chart:%d:%t", serviceParams.Hovered, serviceParams.Refresh)
	if cached, found := cs.cache.Get(cacheKey); found {
		_, _ = w.Write(cached.([]byte))
		return
	}
	snapshot := cs.loader.Snapshot()
	traces := overlay.Apply(snapshot.Traces, serviceParams.Hovered, cs.highlight)
	lineChart := cs.BuildChart(traces, serviceParams.Refresh)
	var buf bytes.Buffer
	if err := lineChart.Render(&buf); err != nil {
		log.WithError(err).Error("Error rendering chart")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	cs.cache.SetWithTTL(cacheKey, buf.Bytes(), renderCacheTTL)
	_, _ = w.Write(buf.Bytes())
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"traces":      len(traces),
		"hovered":     serviceParams.Hovered,
		"path":        request.URL,
	}).Debug("Chart request")
}

func (cs *Service) GetProgress(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, cs.loader.State())
}

func (cs *Service) GetStats(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	snapshot := cs.loader.Snapshot()
	if snapshot.Stats == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, snapshot.Stats)
}

func (cs *Service) GetHistory(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	serviceParams, err := ParseServiceParams(request.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	end := time.Now()
	start := end.Add(
		-time.Duration(serviceParams.Days) * 24 * time.Hour,
	).Add(
		-time.Duration(serviceParams.Hours) * time.Hour,
	).Add(
		-time.Duration(serviceParams.Minutes) * time.Minute,
	)
	reports, err := storage.GetReports(cs.db, start, end)
	if err != nil {
		log.WithError(err).Error("Error reading load reports")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, reports)
}

func writeJSON(w http.ResponseWriter, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	if err := encoder.Encode(value); err != nil {
		log.WithError(err).Error("Error encoding response")
	}
}
