// Command seed provisions the administrator account and a starter set of
// artwork types. It is idempotent: existing records are left untouched.
package main

import (
	"context"
	"log/slog"
	"os"

	"kunstcollectie/config"
	"kunstcollectie/internal/domain/entity"
	"kunstcollectie/internal/domain/repository"
	"kunstcollectie/internal/errors"
	"kunstcollectie/internal/infra/auth"
	"kunstcollectie/internal/infra/persistence/postgres"

	domainerrors "kunstcollectie/internal/domain/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// defaultArtworkTypes is the starter catalogue taxonomy for a new admin.
var defaultArtworkTypes = []entity.ArtworkType{
	{Name: "Schilderij", Description: "Olieverf, acryl en aquarel"},
	{Name: "Beeldhouwwerk", Description: "Sculpturen en plastieken"},
	{Name: "Fotografie", Description: "Analoge en digitale fotografie"},
	{Name: "Grafiek", Description: "Etsen, litho's en zeefdrukken"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Seed == nil || cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return errors.New("seed.adminEmail and seed.adminPassword must be configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	userRepo := postgres.NewUserRepository(db)
	typeRepo := postgres.NewArtworkTypeRepository(db)
	hasher := auth.NewBcryptHasher(cfg)

	admin, err := userRepo.FindByEmail(ctx, cfg.Seed.AdminEmail)
	switch {
	case err == nil:
		logger.Info("Admin account already present", slog.String("email", admin.Email))
	case errors.Is(err, repository.ErrUserNotFound):
		passwordHash, err := hasher.Hash(cfg.Seed.AdminPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash admin password")
		}

		admin = &entity.User{
			Email:        cfg.Seed.AdminEmail,
			Name:         cfg.Seed.AdminName,
			PasswordHash: passwordHash,
			Role:         entity.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to create admin account")
		}

		logger.Info("Admin account created", slog.String("email", admin.Email))
	default:
		return errors.Wrap(err, "failed to look up admin account")
	}

	for _, artworkType := range defaultArtworkTypes {
		artworkType.OwnerID = admin.ID
		if err := typeRepo.Create(ctx, &artworkType); err != nil {
			if errors.Is(err, domainerrors.ErrArtworkTypeExists) {
				continue
			}

			return errors.Wrapf(err, "failed to seed artwork type %q", artworkType.Name)
		}
	}

	return nil
}
