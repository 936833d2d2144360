package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/files"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/router"
	"github.com/crewdeck-dev/crewdeck/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	var entityStore store.Store

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		conn, err := db.Connect(dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		entityStore = store.NewGormStore(conn)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		entityStore = store.NewMemoryStore()
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	blobStore, err := files.NewStore(uploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	if err := store.SeedDefaultMembers(context.Background(), entityStore); err != nil {
		log.Fatalf("Failed to seed default team members: %v", err)
	}

	r := router.NewRouter(handlers.New(entityStore, blobStore))

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
