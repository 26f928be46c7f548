// seed-admin creates the initial admin user if it does not exist yet.
//
// Usage: go run ./cmd/seed-admin
// The password defaults to "admin123" and can be overridden with
// SEED_ADMIN_PASSWORD. The run is idempotent: an existing admin is left
// untouched and the unique index on username backs the existence check.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/karamansaglik/pharmacy-api/internal/domain"
	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/karamansaglik/pharmacy-api/internal/infrastructure/postgres"
	"github.com/karamansaglik/pharmacy-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const adminUsername = "admin"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	existing, err := users.GetByUsername(adminUsername)
	if err != nil {
		fmt.Fprintf(os.Stderr, "check admin user: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("admin user already exists, nothing to do")
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     adminUsername,
		PasswordHash: string(hash),
		Email:        "admin@karamansaglik.com",
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(admin); err != nil {
		// A concurrent seed run may have won the race; that is still success.
		if errors.Is(err, domain.ErrUsernameTaken) {
			fmt.Println("admin user already exists, nothing to do")
			return
		}
		fmt.Fprintf(os.Stderr, "create admin user: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("admin user created")
	fmt.Printf("  username: %s\n", adminUsername)
	fmt.Printf("  role:     %s\n", entity.RoleAdmin)
}
