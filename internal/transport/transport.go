package transport

import (
	"hello_server/internal/router"
	"net"
)

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
	Shutdown()
}

type Router interface {
	Route(line string) router.Decision
}

type Builder interface {
	Build(decision router.Decision) ([]byte, error)
}
