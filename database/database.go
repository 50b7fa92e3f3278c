package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/config"
	"github.com/NxM90/GSJS-Backends/models"
)

// Connect membuka koneksi Postgres dan menyelaraskan skema. Handle
// dikembalikan ke pemanggil dan di-inject ke handler/service — tidak ada
// global package-level.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Role{},
		&models.Division{},
		&models.User{},
		&models.Member{},
		&models.WorshipTime{},
		&models.Schedule{},
		&models.ScheduleWorshipTime{},
		&models.Attendance{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
