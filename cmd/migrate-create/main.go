package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	dir := flag.String("dir", "db/migrations", "migrations directory")
	name := flag.String("name", "", "migration name")
	flag.Parse()

	if *name == "" || strings.ContainsAny(*name, " ") {
		log.Fatal("migration name is required and must not contain spaces")
	}

	version := time.Now().UTC().Format("20060102150405")
	base := filepath.Join(*dir, fmt.Sprintf("%s_%s", version, *name))

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create migrations dir: %v", err)
	}
	for _, suffix := range []string{".up.sql", ".down.sql"} {
		path := base + suffix
		if _, err := os.Stat(path); err == nil {
			log.Fatalf("file already exists: %s", path)
		}
		if err := os.WriteFile(path, []byte("-- "+strings.TrimSuffix(strings.TrimPrefix(suffix, "."), ".sql")+" migration\n"), 0o644); err != nil {
			log.Fatalf("create migration: %v", err)
		}
		log.Printf("created %s", path)
	}
}
