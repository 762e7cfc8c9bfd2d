package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"study_tracker/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening tracker database: %v", err)
	}

	// Small pool: per-user dashboards fan out a handful of short queries,
	// never long-lived ones.
	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(30 * time.Minute)

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error reaching tracker database: %v", err)
	}

	fmt.Println("Connected to the tracker database.")
}

func Close() {
	if DB != nil {
		DB.Close()
		fmt.Println("Tracker database connection closed.")
	}
}
