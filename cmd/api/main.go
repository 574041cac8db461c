package main

import (
	"context"
	"log"
	"os"
	"time"

	"keiyaku/internal/campaign"
	"keiyaku/internal/catalog"
	"keiyaku/internal/db"
	"keiyaku/internal/router"
	"keiyaku/internal/session"
	"keiyaku/internal/signup"
	"keiyaku/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	// catalog can come from object storage instead of postgres
	catalogObjectKey := os.Getenv("CATALOG_OBJECT_KEY")
	if catalogObjectKey != "" {
		required = append(required,
			"R2_ACCESS_KEY",
			"R2_SECRET_KEY",
			"R2_BUCKET_NAME",
			"R2_ENDPOINT",
		)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── CATALOG SOURCE ─────────────────────────
	var catalogRepo catalog.Repository = catalog.NewPostgresRepository(pgDB)

	if catalogObjectKey != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		catalogRepo = catalog.NewObjectRepository(r2Client, catalogObjectKey)
	}

	// ───────────────────────── REPOS ─────────────────────────
	sessionRepo := session.NewPostgresRepository(pgDB)
	campaignRepo := campaign.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	signupService := signup.NewService(sessionRepo, catalogService)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	sessionHandler := session.NewHandler(sessionRepo)
	signupHandler := signup.NewHandler(signupService)
	campaignHandler := campaign.NewHandler(campaignRepo)

	// ───────────────────────── GIN ─────────────────────────
	r := router.NewRouter(
		catalogHandler,
		sessionHandler,
		signupHandler,
		campaignHandler,
	)

	// ───────────────────────── SESSION JANITOR ─────────────────────────
	janitor := session.NewJanitor(sessionRepo, 24*time.Hour, time.Hour)
	go janitor.Run(context.Background())

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
