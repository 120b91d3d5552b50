package config

import (
	"fmt"
	"hello_server/types"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultLineLimit = 8192
	minLineLimit     = 1024
	maxLineLimit     = 1048576
)

type config struct {
	address string

	docRoot      string
	homeFile     string
	notFoundFile string

	serveMode types.ServeMode
	lineLimit int

	readTimeout  time.Duration
	writeTimeout time.Duration

	bannerEnabled bool
}

func parse() (*config, error) {
	mode, err := parseServeMode()
	if err != nil {
		return nil, err
	}

	readTimeout, err := getenvDuration("READ_TIMEOUT")
	if err != nil {
		return nil, err
	}

	writeTimeout, err := getenvDuration("WRITE_TIMEOUT")
	if err != nil {
		return nil, err
	}

	homeFile := getenv("HOME_FILE", "hello.html")
	notFoundFile := getenv("NOT_FOUND_FILE", "404.html")

	return &config{
		address:       getenv("ADDRESS", "127.0.0.1:7878"),
		docRoot:       getenv("DOC_ROOT", "."),
		homeFile:      homeFile,
		notFoundFile:  notFoundFile,
		serveMode:     mode,
		lineLimit:     parseLineLimit(),
		readTimeout:   readTimeout,
		writeTimeout:  writeTimeout,
		bannerEnabled: getenvBool("BANNER", true),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseServeMode() (types.ServeMode, error) {
	switch strings.ToLower(getenv("SERVE_MODE", "sequential")) {
	case "sequential":
		return types.ServeModeSEQUENTIAL, nil
	case "concurrent":
		return types.ServeModeCONCURRENT, nil
	default:
		return 0, fmt.Errorf("invalid SERVE_MODE value")
	}
}

func parseLineLimit() int {
	raw := getenv("LINE_LIMIT", strconv.Itoa(defaultLineLimit))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minLineLimit || size > maxLineLimit {
		log.Printf("Invalid LINE_LIMIT, falling back to %d", defaultLineLimit)
		return defaultLineLimit
	}
	return size
}

func getenvDuration(key string) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s value: negative duration", key)
	}
	return d, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
