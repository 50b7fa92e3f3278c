// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/config"
	"github.com/NxM90/GSJS-Backends/database"
	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/policy"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	email := "admin@gsjs.com"
	password := "admin123"
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		password = v
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// role Admin harus ada dulu (Seed di main sudah membuatnya)
	var role models.Role
	if err := db.Where("nama = ?", policy.RoleAdmin).First(&role).Error; err != nil {
		log.Fatalf("role Admin not found, run the server once to seed: %v", err)
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("⚠️  Admin user already exists with email:", email)
		os.Exit(0)
	}

	u := models.User{
		Email:    email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("✅ Admin user created successfully!")
	fmt.Println("   Email:", email)
	fmt.Println("   Password:", password, "(plain, remember to change later!)")
}
