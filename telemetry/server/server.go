package server

import (
	"github.com/valyala/gorpc"

	"github.com/plotstream/plotstream/telemetry/services"
)

func NewServer(address string, registry *services.Registry) *gorpc.Server {
	dispatcher := gorpc.NewDispatcher()
	for name, service := range registry.Services {
		dispatcher.AddService(name, service)
	}
	server := gorpc.NewTCPServer(address, dispatcher.NewHandlerFunc())
	server.LogError = gorpc.NilErrorLogger
	return server
}
