package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/radenmas/socialite-api/config"
	"github.com/radenmas/socialite-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seedUser := func(username, email, password, bio string) string {
		hash, err := helpers.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (username, email, hash, bio, image_path)
			VALUES ($1, $2, $3, $4, '')
			ON CONFLICT (email) DO UPDATE SET bio = EXCLUDED.bio
			RETURNING id
		`, username, email, hash, bio).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", username, err)
		}
		fmt.Printf("seeded user: id=%s username=%s email=%s password=%s\n", id, username, email, password)
		return id
	}

	annID := seedUser("ann", "ann@example.com", "password123", "demo account")
	bobID := seedUser("bob", "bob@example.com", "password123", "second demo account")

	// bob follows ann
	if _, err := db.Exec(`
		INSERT INTO followers (follower_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, user_id) DO NOTHING
	`, bobID, annID); err != nil {
		log.Fatalf("failed to seed follower edge: %v", err)
	}
	fmt.Println("seeded follower edge: bob -> ann")
}
