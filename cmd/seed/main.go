package main

import (
	"context"
	"log"
	"os"

	"github.com/khatkhazana-hub/backend/internal/catalog"
	"github.com/khatkhazana-hub/backend/internal/config"
	"github.com/khatkhazana-hub/backend/internal/db"
	"github.com/khatkhazana-hub/backend/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	if err := seed.Apply(ctx, pool, cat); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
