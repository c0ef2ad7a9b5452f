package server

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type ServerType int

const (
	HTTP ServerType = iota
)

type Server interface {
	Init(int, *logrus.Logger) error
}

// NewServer creates a server of the given type and starts serving solve jobs
// on the given port. Init blocks until the server shuts down.
func NewServer(serverType ServerType, port int, log *logrus.Logger) (Server, error) {
	switch serverType {
	case HTTP:
		server := &httpServer{}
		return server, server.Init(port, log)
	}
	return nil, fmt.Errorf("%d is not a valid server type", serverType)
}
