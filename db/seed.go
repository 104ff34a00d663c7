package db

import (
	"fmt"
	"log"

	"bms-server/entities"
	"bms-server/utils"
)

// SeedGrid creates the fixed floors x unitsPerFloor apartment grid with
// labels like 1A, 1B, 2A. Idempotent: runs only when the table is empty.
func SeedGrid(database Database, floors, unitsPerFloor int) error {
	gdb := database.GetDB()

	var count int64
	if err := gdb.Model(&entities.Apartment{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count apartments: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Printf("Creating building flats (%d floors x %d units)...", floors, unitsPerFloor)
	apartments := make([]entities.Apartment, 0, floors*unitsPerFloor)
	for f := 1; f <= floors; f++ {
		for u := 0; u < unitsPerFloor; u++ {
			apartments = append(apartments, entities.Apartment{
				UnitNumber: fmt.Sprintf("%d%c", f, 'A'+u),
				Floor:      f,
			})
		}
	}
	if err := gdb.Create(&apartments).Error; err != nil {
		return fmt.Errorf("failed to seed apartments: %w", err)
	}
	return nil
}

// SeedAdmin creates the default admin account when no admin exists. The
// default credentials are a deployment hazard; rotate them after first login.
func SeedAdmin(database Database, email, password string) error {
	gdb := database.GetDB()

	var count int64
	if err := gdb.Model(&entities.User{}).Where("role = ?", entities.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Creating default admin...")
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := entities.User{
		FullName:     "System Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleAdmin,
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	return nil
}
