package main

import (
	"hello_server/internal/bootstrap"
	"hello_server/internal/config"
	"hello_server/internal/version"
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	log.Printf("Starting %s", version.GetVersion())

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	app, err := bootstrap.New(conf)
	if err != nil {
		log.Fatalf("Failed to initialize server: %s", err)
	}

	if err = app.Run(); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
}
