package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"runtime/trace"

	log "github.com/sirupsen/logrus"

	"github.com/plotstream/plotstream/config"
	"github.com/plotstream/plotstream/governor"
	"github.com/plotstream/plotstream/logging"
	"github.com/plotstream/plotstream/utils"
)

var cpuProfile bool
var tracing bool

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
}

func main() {
	flag.Parse()
	logging.SetupLogger()
	if cpuProfile {
		f, err := os.Create("plotstream.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if tracing {
		f, err := os.Create("plotstream.trace")
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	gov := governor.NewGovernor(cfg)
	if err := gov.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start")
	}
	utils.Wait()
	gov.Stop()
}
