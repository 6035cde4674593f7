package main

import (
	"fmt"
	"time"

	"autoplate/config"
	auth "autoplate/internal/authService"
	bidding "autoplate/internal/biddingService"
	model "autoplate/internal/models"
	plates "autoplate/internal/plateService"
	"autoplate/internal/repository"
	"autoplate/internal/server"
	"autoplate/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	repo, err := openRepository(cfg)
	if err != nil {
		utils.Fatal("failed to open repository", map[string]any{"database": cfg.Database, "error": err.Error()})
	}

	authSvc := auth.NewAuthService(repo, auth.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL})
	plateSvc := plates.NewPlateService(repo)
	biddingSvc := bidding.NewBiddingService(repo)

	router := server.SetupRouter(authSvc, plateSvc, biddingSvc)

	utils.Info("starting auction server", map[string]any{"port": cfg.Port, "database": cfg.Database})
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Fatal("server exited", map[string]any{"error": err.Error()})
	}
}

func openRepository(cfg config.Config) (repository.AuctionDB, error) {
	var dialector gorm.Dialector
	switch cfg.Database {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "memory":
		return seededMemoryRepo()
	default:
		return nil, fmt.Errorf("unknown database %q", cfg.Database)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Database, err)
	}

	repo := repository.NewGormRepo(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return repo, nil
}

// seededMemoryRepo backs the server with an in-memory store preloaded with an
// admin account and a couple of open plates. Meant for local development and
// demos, nothing survives a restart.
func seededMemoryRepo() (repository.AuctionDB, error) {
	repo := repository.NewMemoryRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := model.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := repo.CreateUser(&admin); err != nil {
		return nil, err
	}

	deadline := time.Now().UTC().Add(7 * 24 * time.Hour)
	seed := []model.Plate{
		{PlateNumber: "01A777AA", Description: "Tashkent premium number", Deadline: deadline, IsActive: true, OwnerID: admin.ID},
		{PlateNumber: "10X001XX", Description: "Low serial", Deadline: deadline, IsActive: true, OwnerID: admin.ID},
	}
	for i := range seed {
		if err := repo.CreatePlate(&seed[i]); err != nil {
			return nil, err
		}
	}

	utils.Info("seeded in-memory repository", map[string]any{"plates": len(seed), "admin": admin.Username})
	return repo, nil
}
