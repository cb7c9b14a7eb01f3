// Command seed loads the built-in material set into Postgres. Safe to rerun:
// existing records are upserted by name.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/auth"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/repo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on the environment")
	}

	db := auth.InitDB()
	defer db.Close()
	materials := repo.NewPostgresMaterialDB(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := materials.EnsureSchema(ctx); err != nil {
		log.Fatalf("Schema error: %v", err)
	}

	for _, m := range material.Seed {
		if err := m.Validate(); err != nil {
			log.Fatalf("Seed record %q invalid: %v", m.Name, err)
		}
		if err := materials.Upsert(ctx, m); err != nil {
			log.Fatalf("Upsert %q: %v", m.Name, err)
		}
	}
	log.Printf("Seeded %d materials", len(material.Seed))
}
