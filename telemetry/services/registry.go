package services

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/gorpc"

	"github.com/plotstream/plotstream/loader"
	"github.com/plotstream/plotstream/series"
)

func init() {
	var state loader.State
	var stats series.Stats
	var dataRange series.Range
	var fields log.Fields
	var duration time.Duration
	gorpc.RegisterType(&state)
	gorpc.RegisterType(&stats)
	gorpc.RegisterType(dataRange)
	gorpc.RegisterType(fields)
	gorpc.RegisterType(duration)
}

type Registry struct {
	Services map[string]interface{}
}

func NewRegistry() *Registry {
	return &Registry{Services: map[string]interface{}{}}
}

func (r *Registry) AddService(name string, service interface{}) {
	r.Services[name] = service
}
