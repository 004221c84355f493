package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/victoriayuechen/tarecruit/internal/app/models"
	appRepos "github.com/victoriayuechen/tarecruit/internal/app/repositories"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
	"github.com/victoriayuechen/tarecruit/internal/pkg/auth"
)

// defaultAdminPassword is only used on first boot; operators are expected
// to change it immediately.
const defaultAdminPassword = "Admin123!"

// CreateDefaultData creates the default admin identity if it doesn't exist.
// Every other identity is created through registration.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin identity...")

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username: "admin",
		Password: hashedPassword,
		Roles:    []string{"admin"},
	}

	err = userRepo.Create(ctx, admin)
	switch {
	case err == nil:
		lgr.Info().Int64("adminID", admin.ID).Msg("Default admin identity created")
		lgr.Warn().Msg("Default admin password in use, change it")
	case errors.Is(err, apperrors.ErrUsernameAlreadyUsed):
		lgr.Info().Msg("Admin identity already exists, skipping creation")
	default:
		lgr.Error().Err(err).Msg("Error creating admin identity")
		return err
	}

	return nil
}
