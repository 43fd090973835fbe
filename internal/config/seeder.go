package config

import (
	"log"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/password"

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

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedMembershipTypes(); err != nil {
		log.Printf("⚠️ Membership type seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the default administrator account.
// Development convenience only; production admins are created through a
// secure process.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.RoleAssignment{}).Where("role = ?", domain.RoleAdministrator).Count(&count)
	if count > 0 {
		return nil // an administrator already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        "admin@fitcenter.local",
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	profile := &models.Profile{
		ID:       admin.ID,
		FullName: "Administrator",
		Email:    admin.Email,
	}
	if err := s.db.Create(profile).Error; err != nil {
		return err
	}

	assignment := &models.RoleAssignment{
		UserID: admin.ID,
		Role:   domain.RoleAdministrator,
	}
	if err := s.db.Create(assignment).Error; err != nil {
		return err
	}

	log.Printf("✅ Administrator created: %s", admin.Email)
	return nil
}

// seedMembershipTypes seeds the starter membership plans
func (s *Seeder) seedMembershipTypes() error {
	var count int64
	s.db.Model(&models.MembershipType{}).Count(&count)
	if count > 0 {
		return nil
	}

	monthly := "Month-to-month access"
	halfYear := "Six months, billed up front"
	annual := "Twelve months, best value"
	types := []models.MembershipType{
		{Name: "Monthly", Description: &monthly, DurationMonths: 1, Price: 60.00},
		{Name: "Half-Year", Description: &halfYear, DurationMonths: 6, Price: 320.00},
		{Name: "Annual", Description: &annual, DurationMonths: 12, Price: 600.00},
	}
	if err := s.db.Create(&types).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d membership types", len(types))
	return nil
}
