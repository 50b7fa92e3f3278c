package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
)

// Seed mengisi data referensi awal kalau tabelnya masih kosong:
// role, divisi, dan satu akun admin.
func Seed(db *gorm.DB) error {
	var nRoles int64
	if err := db.Model(&models.Role{}).Count(&nRoles).Error; err != nil {
		return err
	}
	if nRoles == 0 {
		roles := []models.Role{
			{Nama: "Admin"},
			{Nama: "PIC"},
			{Nama: "Pihak Gereja"},
			{Nama: "Semi Volunteer"},
		}
		if err := db.Create(&roles).Error; err != nil {
			return err
		}
		log.Println("seed: data role ditambahkan")
	}

	var nDivisi int64
	if err := db.Model(&models.Division{}).Count(&nDivisi).Error; err != nil {
		return err
	}
	if nDivisi == 0 {
		divisi := []models.Division{
			{Nama: "Production"},
			{Nama: "PAW"},
			{Nama: "Tim Musik"},
			{Nama: "SM"},
		}
		if err := db.Create(&divisi).Error; err != nil {
			return err
		}
		log.Println("seed: data divisi ditambahkan")
	}

	var admin models.User
	err := db.Where("email = ?", "admin@gsjs.com").First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		var adminRole models.Role
		if err := db.Where("nama = ?", "Admin").First(&adminRole).Error; err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := models.User{
			Email:    "admin@gsjs.com",
			Password: string(hash),
			RoleID:   adminRole.ID,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Println("seed: user admin ditambahkan")
	} else if err != nil {
		return err
	}

	return nil
}
