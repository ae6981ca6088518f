package main

import (
	"flag"
	"log"
	"net/http"

	"lavaclimb.dev/internal/config"
	"lavaclimb.dev/internal/handlers"
)

func main() {
	configPath := flag.String("config", "data/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	router := handlers.SetupRoutes(cfg)

	log.Printf("Serving %d patterns, default difficulty %s", len(cfg.Patterns), cfg.DefaultDifficulty)
	log.Printf("Listening on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
