package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// TestAuthor represents a test author to be seeded into the database.
type TestAuthor struct {
	Name     string
	Username string
	Password string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Define test authors to seed
	testAuthors := []TestAuthor{
		{Name: "Test Author", Username: "test", Password: "test"},
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database not responding: %w", err)
	}

	fmt.Println("Seeding database...")

	// Seed each test author
	for _, author := range testAuthors {
		if err := seedAuthor(ctx, pool, author); err != nil {
			fmt.Printf("ERROR: %s: %v\n", author.Username, err)
		} else {
			fmt.Printf("SUCCESS: %s\n", author.Username)
		}
	}

	fmt.Println("Seed completed")
	return nil
}

func seedAuthor(ctx context.Context, pool *pgxpool.Pool, author TestAuthor) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(author.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash generation failed: %w", err)
	}

	query := `
		INSERT INTO users (name, username, password, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
			SET name = EXCLUDED.name,
			    password = EXCLUDED.password,
			    updated_at = NOW()
	`

	_, err = pool.Exec(ctx, query, author.Name, author.Username, string(hash))
	if err != nil {
		return fmt.Errorf("database insert failed: %w", err)
	}

	return nil
}
