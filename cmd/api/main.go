package main

import (
	"log"
	"net/http"

	"fieldscope/internal/api"
	"fieldscope/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	h := api.NewServer(cfg)
	log.Printf("fieldscope api listening on %s provider=%s model=%s", cfg.APIAddr, cfg.Provider, cfg.Model)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
