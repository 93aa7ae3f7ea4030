package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/AloysioLvy/ReportTracker/backend/internal/config"
	"github.com/AloysioLvy/ReportTracker/backend/internal/database"
	"github.com/AloysioLvy/ReportTracker/backend/internal/database/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DBDriver != config.DriverPostgres {
		log.Fatalf("migrate only applies the postgres schema; DB_DRIVER is %q (set DB_AUTO_MIGRATE=true instead)", cfg.DBDriver)
	}

	// Connect to the database
	db, err := sql.Open("postgres", database.PostgresDSN(cfg))
	if err != nil {
		log.Fatal("failed to open database:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close connection: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping database:", err)
	}

	fmt.Println("✅ Connected to database")

	sqlBytes, err := migrations.Files.ReadFile(migrations.SchemaFile)
	if err != nil {
		log.Fatal("failed to read embedded schema:", err)
	}

	fmt.Printf("🚀 Applying %s...\n", migrations.SchemaFile)

	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatal("❌ migration failed:", err)
	}

	fmt.Println("✅ Migration applied")

	// Check the created tables
	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name IN ('reports', 'follow_up_actions')
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatal("failed to list tables:", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	fmt.Println("\n📋 Tables:")
	found := 0
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			log.Printf("failed to scan table: %v", err)
			continue
		}
		found++
		fmt.Printf("  ✓ %s\n", table)
	}
	if err := rows.Err(); err != nil {
		log.Fatal("failed to read tables:", err)
	}
	if found != 2 {
		log.Fatalf("expected 2 tables, found %d", found)
	}

	fmt.Println("\n🎉 Done!")
}
