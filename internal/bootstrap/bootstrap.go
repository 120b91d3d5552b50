package bootstrap

import (
	"errors"
	"fmt"
	"hello_server/internal/banner"
	"hello_server/internal/config"
	"hello_server/internal/response"
	"hello_server/internal/router"
	"hello_server/internal/store"
	"hello_server/internal/transport"
	"hello_server/internal/version"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
)

type Bootstrap struct {
	Config     config.Config
	Store      store.Store
	Server     transport.Transport
	Output     io.Writer
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(config config.Config) (*Bootstrap, error) {
	resources := store.New(config.DocRoot())
	if err := checkResources(resources, config.HomeFile(), config.NotFoundFile()); err != nil {
		return nil, err
	}

	routes := router.New(config.HomeFile(), config.NotFoundFile())
	builder := response.New(resources)

	return &Bootstrap{
		Config:     config,
		Store:      resources,
		Server:     transport.NewHTTPServer(config, routes, builder),
		Output:     os.Stdout,
		ErrChan:    make(chan error, 1),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

// checkResources fails fast when a routed resource cannot be read, so a
// broken document root is reported at startup rather than per connection.
func checkResources(s store.Store, names ...string) error {
	for _, name := range names {
		if _, err := s.Load(name); err != nil {
			return fmt.Errorf("resource check failed: %w", err)
		}
	}
	return nil
}

func (b *Bootstrap) printBanner(addr net.Addr) {
	err := banner.Print(b.Output, banner.Info{
		Address: addr.String(),
		DocRoot: b.Config.DocRoot(),
		Mode:    b.Config.ServeMode().String(),
		Version: version.GetShortVersion(),
	})
	if err != nil {
		log.Printf("Failed to print banner: %v", err)
	}
}

func (b *Bootstrap) Run() error {
	ln, err := b.Server.Listen()
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", b.Config.Address(), err)
	}

	if b.Config.BannerEnabled() {
		b.printBanner(ln.Addr())
	}

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	go func() {
		b.ErrChan <- b.Server.Serve(ln)
	}()

	select {
	case err = <-b.ErrChan:
		_ = ln.Close()
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)
		if err = ln.Close(); err != nil {
			log.Printf("Error closing listener: %v", err)
		}
		b.Server.Shutdown()
		if err = <-b.ErrChan; err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("service error: %w", err)
		}
		return nil
	}
}
