// Command seed prepares a fresh database: it ensures the users table
// exists and creates the initial admin account if none is present.
package main

import (
	"context"
	"errors"
	"time"

	"adminpanel/api/internal/config"
	"adminpanel/api/internal/database"
	"adminpanel/api/internal/log"
	"adminpanel/api/internal/models"
	"adminpanel/api/internal/repository"
	"adminpanel/api/internal/security"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
	adminName     = "Admin User"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash BYTEA NOT NULL,
	name          TEXT,
	role          TEXT NOT NULL DEFAULT 'USER',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, usersSchema); err != nil {
		logger.Fatal().Err(err).Msg("ensure users table failed")
	}

	users := repository.NewUserRepository(pool)

	if _, err := users.FindByEmail(ctx, adminEmail); err == nil {
		logger.Info().Str("email", adminEmail).Msg("admin user already exists")
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logger.Fatal().Err(err).Msg("lookup admin user failed")
	}

	hash, err := security.HashPassword(adminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash admin password failed")
	}

	name := adminName
	created, err := users.Create(ctx, models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         &name,
		Role:         models.UserRoleAdmin,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create admin user failed")
	}

	logger.Info().Int64("id", created.ID).Str("email", created.Email).Msg("created admin user")
}
