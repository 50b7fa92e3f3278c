package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/services"
)

// ScheduleStore implementasi services.ScheduleRepo di atas GORM.
type ScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore { return &ScheduleStore{db: db} }

func (s *ScheduleStore) Transaction(fn func(tx services.ScheduleRepo) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleStore{db: tx})
	})
}

func (s *ScheduleStore) CreateSchedule(sched *models.Schedule) error {
	return s.db.Create(sched).Error
}

func (s *ScheduleStore) GetSchedule(id uint) (*models.Schedule, error) {
	var sched models.Schedule
	if err := s.db.First(&sched, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrScheduleNotFound
		}
		return nil, err
	}
	return &sched, nil
}

func (s *ScheduleStore) ListSchedules(start, end string) ([]models.Schedule, error) {
	tx := s.db.Model(&models.Schedule{})
	if start != "" && end != "" {
		tx = tx.Where("tanggal BETWEEN ? AND ?", start, end)
	}
	var out []models.Schedule
	if err := tx.Order("tanggal ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ScheduleStore) UpdateSchedule(sched *models.Schedule) error {
	return s.db.Save(sched).Error
}

func (s *ScheduleStore) DeleteSchedule(id uint) error {
	return s.db.Delete(&models.Schedule{}, id).Error
}

func (s *ScheduleStore) DeleteAssociations(jadwalID uint) error {
	return s.db.Where("jadwal_id = ?", jadwalID).Delete(&models.ScheduleWorshipTime{}).Error
}

func (s *ScheduleStore) CreateAssociation(a *models.ScheduleWorshipTime) error {
	return s.db.Create(a).Error
}

// ListAssociations urut id naik = urutan insert.
func (s *ScheduleStore) ListAssociations(jadwalID uint) ([]models.ScheduleWorshipTime, error) {
	var out []models.ScheduleWorshipTime
	err := s.db.Where("jadwal_id = ?", jadwalID).Order("id ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ScheduleStore) GetWorshipTime(id uint) (*models.WorshipTime, error) {
	var wt models.WorshipTime
	if err := s.db.First(&wt, id).Error; err != nil {
		return nil, err
	}
	return &wt, nil
}

func (s *ScheduleStore) CountWorshipTimes(ids []uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.WorshipTime{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}
