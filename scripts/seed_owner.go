package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/khoahotran/devfolio/pkg/auth"
)

func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	OWNER_EMAIL := os.Getenv("OWNER_EMAIL")
	OWNER_PASSWORD := os.Getenv("OWNER_PASSWORD")
	OWNER_USERNAME := os.Getenv("OWNER_USERNAME")

	hash, err := auth.HashPassword(OWNER_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("cannot begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	ownerID := uuid.New()
	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
		RETURNING id
	`
	err = tx.QueryRow(ctx, query, ownerID, OWNER_EMAIL, hash).Scan(&ownerID)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO usernames (owner_id, username)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET username = $2
	`, ownerID, OWNER_USERNAME)
	if err != nil {
		log.Fatalf("cannot add username lookup: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO profiles (owner_id, username)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET username = $2, updated_at = NOW()
	`, ownerID, OWNER_USERNAME)
	if err != nil {
		log.Fatalf("cannot add profile: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("cannot commit seed transaction: %v", err)
	}

	fmt.Printf("added or updated owner '%s' (@%s) successfully!\n", OWNER_EMAIL, OWNER_USERNAME)
}
