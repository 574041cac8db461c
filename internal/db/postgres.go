package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// PLANS
	// -------------------------------
	plansSQL := `
		CREATE TABLE IF NOT EXISTS plans (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			monthly_fee INTEGER NOT NULL CHECK (monthly_fee >= 0),
			sim_card_type VARCHAR(16) NOT NULL,
			off_peak BOOLEAN NOT NULL DEFAULT FALSE,
			bundled_calling_option_id VARCHAR(64) NULL,
			position INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(ctx, plansSQL); err != nil {
		return err
	}

	// -------------------------------
	// OPTIONS
	// -------------------------------
	optionsSQL := `
		CREATE TABLE IF NOT EXISTS options (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			monthly_fee INTEGER NOT NULL CHECK (monthly_fee >= 0),
			calling BOOLEAN NOT NULL DEFAULT FALSE,
			requires_voice_sim BOOLEAN NOT NULL DEFAULT FALSE,
			position INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(ctx, optionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SIGNUP SESSIONS
	// -------------------------------
	sessionsSQL := `
		CREATE TABLE IF NOT EXISTS signup_sessions (
			id UUID PRIMARY KEY,
			contract_type VARCHAR(16) NOT NULL,
			selection JSONB NOT NULL,
			current_path VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, sessionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CAMPAIGNS
	// -------------------------------
	campaignsSQL := `
		CREATE TABLE IF NOT EXISTS campaigns (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			discount_fee INTEGER NOT NULL DEFAULT 0,
			starts_at TIMESTAMP NOT NULL,
			ends_at TIMESTAMP NOT NULL
		)
	`
	if _, err := db.Exec(ctx, campaignsSQL); err != nil {
		return err
	}

	if err := seedCatalog(ctx, db); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}

// seedCatalog inserts the default lineup when the plans table is
// empty, so a fresh database serves a working wizard immediately.
func seedCatalog(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM plans`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seedSQL := `
		INSERT INTO plans (id, name, monthly_fee, sim_card_type, off_peak, bundled_calling_option_id, position) VALUES
			('plan-v10-k5',    '音声10GB+5分かけ放題セット',         2398, 'voice', FALSE, 'opt-kakeho-5', 1),
			('plan-v20-k5',    '音声20GB+5分かけ放題セット',         2618, 'voice', FALSE, 'opt-kakeho-5', 2),
			('plan-v10-op-k5', '音声10GBオフピーク+5分かけ放題セット', 2002, 'voice', TRUE,  'opt-kakeho-5', 3),
			('plan-v3',        '音声3GB',                           1078, 'voice', FALSE, NULL, 4),
			('plan-v10',       '音声10GB',                          1958, 'voice', FALSE, NULL, 5),
			('plan-v20',       '音声20GB',                          2178, 'voice', FALSE, NULL, 6),
			('plan-v10-op',    '音声10GBオフピーク',                 1562, 'voice', TRUE,  NULL, 7),
			('plan-d3',        'データ3GB',                          858, 'data',  FALSE, NULL, 8),
			('plan-d10',       'データ10GB',                        1738, 'data',  FALSE, NULL, 9);

		INSERT INTO options (id, name, monthly_fee, calling, requires_voice_sim, position) VALUES
			('opt-kakeho-5',    '5分かけ放題',       550, TRUE,  TRUE,  1),
			('opt-kakeho-full', '完全かけ放題',     1870, TRUE,  TRUE,  2),
			('opt-voicemail',   '留守番電話',        330, FALSE, TRUE,  3),
			('opt-catch',       'キャッチホン',      220, FALSE, TRUE,  4),
			('opt-security',    'データセキュリティ', 440, FALSE, FALSE, 5);

		INSERT INTO campaigns (title, description, discount_fee, starts_at, ends_at) VALUES
			('乗り換え応援キャンペーン', '他社からのお乗り換えで初月基本料金が割引になります。', 1078,
			 CURRENT_TIMESTAMP - INTERVAL '7 days', CURRENT_TIMESTAMP + INTERVAL '90 days');
	`

	_, err := db.Exec(ctx, seedSQL)
	if err == nil {
		log.Println("Seeded default catalog")
	}
	return err
}
