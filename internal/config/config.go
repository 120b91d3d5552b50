package config

import (
	"hello_server/types"
	"time"
)

type Config interface {
	Address() string

	DocRoot() string
	HomeFile() string
	NotFoundFile() string

	ServeMode() types.ServeMode
	LineLimit() int

	ReadTimeout() time.Duration
	WriteTimeout() time.Duration

	BannerEnabled() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Address() string             { return c.address }
func (c *config) DocRoot() string             { return c.docRoot }
func (c *config) HomeFile() string            { return c.homeFile }
func (c *config) NotFoundFile() string        { return c.notFoundFile }
func (c *config) ServeMode() types.ServeMode  { return c.serveMode }
func (c *config) LineLimit() int              { return c.lineLimit }
func (c *config) ReadTimeout() time.Duration  { return c.readTimeout }
func (c *config) WriteTimeout() time.Duration { return c.writeTimeout }
func (c *config) BannerEnabled() bool         { return c.bannerEnabled }
