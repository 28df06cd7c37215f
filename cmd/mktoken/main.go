package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"flashlearn/internal/config"
	"flashlearn/internal/database"
	"flashlearn/internal/security"
	"flashlearn/internal/service"
)

// mktoken provisions a user (if needed) and prints a signed bearer token
// for them. It is the ops-side replacement for a login flow.
func main() {
	username := flag.String("username", "", "Username to provision or look up (required)")
	email := flag.String("email", "", "Email address (required when creating a new user)")
	flag.Parse()

	if *username == "" {
		fmt.Println("Error: -username flag is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Load()
	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET must be set")
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := service.NewUserService(db)

	user, err := users.GetByUsername(*username)
	if errors.Is(err, service.ErrUserNotFound) {
		if *email == "" {
			fmt.Println("Error: -email flag is required to create a new user")
			os.Exit(1)
		}
		user, err = users.Provision(*username, *email)
	}
	if err != nil {
		log.Fatalf("Failed to resolve user: %v", err)
	}

	token, err := security.IssueToken(cfg.TokenSecret, user.ID, user.Username, cfg.TokenDuration)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	log.Printf("User %q (id %d), token valid for %s", user.Username, user.ID, cfg.TokenDuration)
	fmt.Println(token)
}
