package transport

import (
	"errors"
	"hello_server/internal/config"
	"hello_server/types"
	"log"
	"net"
	"sync"
	"time"
)

const (
	baseAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff  = time.Second
)

type httpServer struct {
	handler *httpHandler
	address string
	mode    types.ServeMode
	active  sync.WaitGroup
	sleep   func(time.Duration)

	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

func NewHTTPServer(config config.Config, router Router, builder Builder) Transport {
	return &httpServer{
		handler: newHTTPHandler(config, router, builder),
		address: config.Address(),
		mode:    config.ServeMode(),
		sleep:   time.Sleep,
		conns:   make(map[net.Conn]struct{}),
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ht.address)
}

// Serve accepts until listener is closed. In sequential mode a connection is
// fully handled before the next Accept.
func (ht *httpServer) Serve(listener net.Listener) error {
	log.Printf("HTTP server is starting on %s (%s)", ht.address, ht.mode)
	var backoff time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				ht.active.Wait()
				return err
			}
			if backoff == 0 {
				backoff = baseAcceptBackoff
			} else {
				backoff *= 2
			}
			if backoff > maxAcceptBackoff {
				backoff = maxAcceptBackoff
			}
			log.Printf("Error accepting connection: %v; retrying in %v", err, backoff)
			ht.sleep(backoff)
			continue
		}
		backoff = 0

		if !ht.track(conn) {
			continue
		}
		if ht.mode == types.ServeModeCONCURRENT {
			ht.active.Add(1)
			go func() {
				defer ht.active.Done()
				ht.serveConn(conn)
			}()
			continue
		}
		ht.serveConn(conn)
	}
}

// Shutdown closes every connection still being served. Connections accepted
// afterwards are closed immediately. The listener is owned by the caller.
func (ht *httpServer) Shutdown() {
	ht.mu.Lock()
	defer ht.mu.Unlock()

	ht.shutdown = true
	for conn := range ht.conns {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("Error closing connection from %s: %v", conn.RemoteAddr(), err)
		}
	}
}

func (ht *httpServer) serveConn(conn net.Conn) {
	defer ht.untrack(conn)
	ht.handler.Handler(conn)
}

func (ht *httpServer) track(conn net.Conn) bool {
	ht.mu.Lock()
	defer ht.mu.Unlock()

	if ht.shutdown {
		_ = conn.Close()
		return false
	}
	ht.conns[conn] = struct{}{}
	return true
}

func (ht *httpServer) untrack(conn net.Conn) {
	ht.mu.Lock()
	defer ht.mu.Unlock()
	delete(ht.conns, conn)
}
