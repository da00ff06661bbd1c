package app

import (
	"context"
	"errors"
	"os"

	"github.com/Ankitkumar028/rider-fleet/internal/auth"
	"github.com/Ankitkumar028/rider-fleet/internal/company"
	"github.com/Ankitkumar028/rider-fleet/internal/partnership"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCompanies = []string{"Zomato", "Swiggy", "Blinkit"}

const seedPartnershipName = "Delhivery"

// runSeed makes sure a freshly provisioned deployment is usable: default
// companies, one admin login and the launch partnership. Idempotent, so it
// runs on every boot.
func runSeed(ctx context.Context, db *gorm.DB) error {
	logger := zap.L().Named("app.seed")

	companyRepo := company.NewRepository(db)
	authRepo := auth.NewRepository(db)
	partnershipRepo := partnership.NewRepository(db)

	for _, name := range seedCompanies {
		_, err := companyRepo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := companyRepo.Create(ctx, &company.Company{ID: uuid.New(), Name: name}); err != nil {
			return err
		}
		logger.Info("seeded company", zap.String("name", name))
	}

	if _, err := authRepo.FindFirstByRole(ctx, auth.RoleAdmin); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		username := os.Getenv("SEED_ADMIN_USERNAME")
		if username == "" {
			username = "admin"
		}
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := authRepo.Create(ctx, &auth.Credential{
			ID:       uuid.New(),
			Username: username,
			Password: string(hashed),
			Role:     auth.RoleAdmin,
		}); err != nil {
			return err
		}
		logger.Info("seeded admin credential", zap.String("username", username))
	}

	if _, err := partnershipRepo.GetByName(ctx, seedPartnershipName); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := partnershipRepo.Create(ctx, &partnership.Partnership{
			ID:      uuid.New(),
			Name:    seedPartnershipName,
			Visible: true,
		}); err != nil {
			return err
		}
		logger.Info("seeded partnership", zap.String("name", seedPartnershipName))
	}

	return nil
}
