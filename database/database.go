package database

import (
	"context" // For cancellation of pool setup and ping
	"fmt"     // For building the connection string
	"log"     // For logging messages
	"strings" // For extracting the Supabase project reference
	"time"    // For pool lifetimes

	"fittrack/backend/config" // Connection settings

	"github.com/jackc/pgx/v5"         // Base pgx package (Rows, Row, Tx)
	"github.com/jackc/pgx/v5/pgconn"  // For pgconn.CommandTag
	"github.com/jackc/pgx/v5/pgxpool" // PostgreSQL driver and connection pool
)

// DBPool defines the interface for database operations we need.
// This allows mocking for tests. It includes methods from pgxpool.Pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
	Begin(ctx context.Context) (pgx.Tx, error) // Onboarding writes profile + first weight in one tx
}

// DB holds the database connection pool interface.
var DB DBPool

// ConnectionString returns DATABASE_URL when set, otherwise builds the
// Supabase connection string postgresql://postgres:<pw>@db.<ref>.supabase.co:5432/postgres.
func ConnectionString(cfg *config.Config) (string, error) {
	// An explicit URL (local Postgres, CI, another host) wins
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL, nil
	}

	// Extract the project reference from https://<ref>.supabase.co
	if !strings.HasPrefix(cfg.SupabaseURL, "https://") || !strings.HasSuffix(cfg.SupabaseURL, ".supabase.co") {
		log.Printf("Error: Invalid SUPABASE_URL format: %s. Expected format: https://<ref>.supabase.co", cfg.SupabaseURL)
		return "", fmt.Errorf("invalid SUPABASE_URL format: %s", cfg.SupabaseURL)
	}
	projectRef := strings.TrimSuffix(strings.TrimPrefix(cfg.SupabaseURL, "https://"), ".supabase.co")
	if projectRef == "" {
		log.Printf("Error: Could not extract project reference from SUPABASE_URL: %s", cfg.SupabaseURL)
		return "", fmt.Errorf("could not extract project reference from SUPABASE_URL")
	}
	log.Printf("Extracted Supabase project reference: %s", projectRef) // Log extracted ref

	// Standard Supabase setup: user 'postgres', database 'postgres'
	return fmt.Sprintf("postgresql://postgres:%s@db.%s.supabase.co:5432/postgres", cfg.SupabaseDBPassword, projectRef), nil
}

// ConnectDB initializes the database connection pool using configuration.
func ConnectDB(cfg *config.Config) error {
	connString, err := ConnectionString(cfg)
	if err != nil {
		return err
	}

	log.Println("Attempting to connect to database...")

	// Configure the connection pool
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Printf("Error parsing database connection string: %v\n", err)
		return fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool sizing: profile, weight and preference reads are short queries
	poolConfig.MaxConns = 10                      // Maximum number of connections in the pool
	poolConfig.MinConns = 2                       // Connections kept warm
	poolConfig.MaxConnLifetime = time.Hour        // Recycle connections hourly
	poolConfig.MaxConnIdleTime = time.Minute * 30 // Drop idle connections
	poolConfig.HealthCheckPeriod = time.Minute    // How often to check connection health

	// Establish the connection pool
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Printf("Error connecting to the database: %v\n", err)
		return fmt.Errorf("unable to create connection pool: %w", err)
	}
	DB = pool

	// Test the connection
	if err = DB.Ping(context.Background()); err != nil {
		log.Printf("Error pinging database: %v\n", err)
		DB.Close() // Close the pool if ping fails
		return fmt.Errorf("database ping failed: %w", err)
	}

	log.Println("Database connection pool established successfully!")
	return nil
}

// CloseDB closes the database connection pool.
// Should be called on application shutdown.
func CloseDB() {
	if DB != nil {
		log.Println("Closing database connection pool...")
		DB.Close() // *pgxpool.Pool in production, pgxmock in tests
		log.Println("Database connection pool closed.")
	}
}
