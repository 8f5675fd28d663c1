package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"

	"emissions-platform/internal/catalog"
	"emissions-platform/internal/config"
	"emissions-platform/internal/models"
	"emissions-platform/internal/repository"
	"emissions-platform/pkg/database"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	seed := flag.Bool("seed", true, "Seed the reference table from the embedded catalog after migrating up")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	dbCfg := &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Connected to database successfully")

	// Read migration file
	var migrationFile string
	if *direction == "up" {
		migrationFile = "migrations/001_create_schema.up.sql"
	} else {
		migrationFile = "migrations/001_create_schema.down.sql"
	}

	migrationPath := filepath.Join(".", migrationFile)
	content, err := os.ReadFile(migrationPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read migration file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Running migration: %s\n", migrationFile)

	if _, err := db.Exec(string(content)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute migration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migration completed successfully")

	if *direction != "up" || !*seed {
		return
	}

	// Seed the reference table from the embedded catalog.
	logger := logging.NewStructuredLogger("emissions-migrate", "1.0.0", logging.InfoLevel)
	metricsCollector := metrics.NewCollector("emissions_migrate")

	dbCfg.MaxOpenConns = 2
	dbCfg.MaxIdleConns = 1

	pgDB, err := database.NewPostgresDB(dbCfg, logger, metricsCollector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to reconnect for seeding: %v\n", err)
		os.Exit(1)
	}
	defer pgDB.Close()

	profileRepo := repository.NewProfileRepository(pgDB, logger, metricsCollector)
	industryCatalog := catalog.New()

	profiles := make([]*models.IndustryProfile, 0, industryCatalog.Len())
	for _, name := range industryCatalog.List() {
		profile, err := industryCatalog.Get(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read embedded profile %q: %v\n", name, err)
			os.Exit(1)
		}
		profiles = append(profiles, profile)
	}

	fmt.Printf("Seeding %d industry profiles\n", len(profiles))

	if err := profileRepo.Seed(context.Background(), profiles); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed reference table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Reference table seeded successfully")
}
