package transport

import (
	"bufio"
	"errors"
	"hello_server/internal/config"
	"hello_server/internal/http/header"
	"hello_server/internal/router"
	"log"
	"net"
	"time"
)

type httpHandler struct {
	router       Router
	builder      Builder
	lineLimit    int
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func newHTTPHandler(config config.Config, router Router, builder Builder) *httpHandler {
	return &httpHandler{
		router:       router,
		builder:      builder,
		lineLimit:    config.LineLimit(),
		readTimeout:  config.ReadTimeout(),
		writeTimeout: config.WriteTimeout(),
	}
}

// Handler serves exactly one request line on conn and closes it.
func (hh *httpHandler) Handler(conn net.Conn) {
	defer hh.closeConnection(conn)

	line, ok := hh.readRequestLine(conn)
	if !ok {
		return
	}

	decision := hh.router.Route(line)
	resp, err := hh.builder.Build(decision)
	if err != nil {
		log.Printf("Error building response for %s: %v", conn.RemoteAddr(), err)
		return
	}

	if err = hh.writeResponse(conn, resp); err != nil {
		log.Printf("Error writing response to %s: %v", conn.RemoteAddr(), err)
		return
	}
	hh.logAccess(conn, line, decision, len(resp))
}

func (hh *httpHandler) readRequestLine(conn net.Conn) (string, bool) {
	if hh.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(hh.readTimeout)); err != nil {
			log.Printf("Error setting read deadline: %v", err)
			return "", false
		}
	}

	br := bufio.NewReaderSize(conn, hh.lineLimit)
	line, err := header.ReadRequestLine(br)
	switch {
	case err == nil:
		return line, true
	case errors.Is(err, header.ErrNoTerminator):
		return "", true
	case errors.Is(err, header.ErrLineTooLong):
		log.Printf("Request line longer than %d bytes, treating as invalid", hh.lineLimit)
		return "", true
	default:
		log.Printf("Error reading request line: %v", err)
		return "", false
	}
}

func (hh *httpHandler) writeResponse(conn net.Conn, resp []byte) error {
	if hh.writeTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(hh.writeTimeout)); err != nil {
			return err
		}
	}
	_, err := conn.Write(resp)
	return err
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing connection: %v", err)
	}
}

func (hh *httpHandler) logAccess(conn net.Conn, line string, decision router.Decision, size int) {
	method, target, _, err := header.ParseRequestLine(line)
	if err != nil {
		log.Printf("%s %q -> %s (%d bytes)", conn.RemoteAddr(), line, decision.StatusLine, size)
		return
	}
	log.Printf("%s %s %s -> %s (%d bytes)", conn.RemoteAddr(), method, target, decision.StatusLine, size)
}
