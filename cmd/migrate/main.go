package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"situation-scale/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dir := flag.String("dir", "db/migrations", "migrations directory")
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying")
	flag.Parse()

	if err := run(*dir, *down); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(dir string, down bool) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	if down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("no migrations to apply")
		return nil
	}
	if err != nil {
		return err
	}
	if down {
		log.Println("rolled back one migration")
	} else {
		log.Println("database migrations applied")
	}
	return nil
}
