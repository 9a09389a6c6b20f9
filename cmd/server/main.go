package main

import (
	"log"
	"net/http"
	"os"

	"situation-scale/internal/config"
	"situation-scale/internal/db"
	"situation-scale/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	var store server.Store
	conn, err := db.Open(cfg)
	if err != nil {
		log.Printf("running without database: %v", err)
		store = server.NewMemoryStore()
	} else {
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		store = server.NewGormStore(conn)
	}

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	srv := server.New(store, cfg)
	log.Printf("situation-scale server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
