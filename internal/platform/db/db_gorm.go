// Package db provides database connection helpers.
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "celebrity_backend/internal/feature/auth/adapters"
	historyadapters "celebrity_backend/internal/feature/history/adapters"
)

// OpenDB opens the application database. When DATABASE_DSN is set it connects
// to PostgreSQL, otherwise it falls back to a local SQLite file (SQLITE_PATH,
// default "celebrity.db"). The process exits if the database stays unreachable.
func OpenDB() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(gpostgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "celebrity.db"
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database %q: %v", path, err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（APIクライアント、認識履歴）
		if err := db.AutoMigrate(
			&authadapters.ClientModel{},
			&historyadapters.RecognitionLogModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
