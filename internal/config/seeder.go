package config

import (
	"log"
	"os"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedSystemRoles(); err != nil {
		return err
	}
	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedSystemRoles creates the built-in admin and viewer roles. Existing
// roles are left untouched so operator edits to display names survive.
func (s *Seeder) seedSystemRoles() error {
	roles := []*models.Role{
		{
			Name:        models.SystemRoleAdmin,
			DisplayName: "Administrator",
			Description: "Full access to every module",
			Permissions: models.AllPermissions(),
			IsSystem:    true,
			IsActive:    true,
		},
		{
			Name:        models.SystemRoleViewer,
			DisplayName: "Viewer",
			Description: "Read-only access, assigned to self-registered accounts",
			Permissions: models.ViewOnlyPermissions(),
			IsSystem:    true,
			IsActive:    true,
		},
	}

	for _, role := range roles {
		var count int64
		if err := s.db.Model(&models.Role{}).Where("name = ?", role.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(role).Error; err != nil {
			return err
		}
		log.Printf("✅ System role created: %s", role.Name)
	}
	return nil
}

// seedAdminUser seeds the first admin account. The password comes from
// SEED_ADMIN_PASSWORD; without it no account is created and the admin
// must be provisioned manually.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Users already exist
	}

	seedPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if seedPassword == "" {
		log.Println("⚠️ Skipping admin seed: SEED_ADMIN_PASSWORD not set")
		return nil
	}
	if err := password.Validate(seedPassword); err != nil {
		return err
	}

	var adminRole models.Role
	if err := s.db.Where("name = ?", models.SystemRoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	hashedPassword, err := password.Hash(seedPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@nile.local",
		Password: hashedPassword,
		FullName: "System Administrator",
		RoleID:   adminRole.ID,
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}
