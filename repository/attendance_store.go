package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/services"
)

// AttendanceStore implementasi services.AttendanceRepo di atas GORM.
// Proyeksi join memakai SQL eksplisit, bukan preloading ORM.
type AttendanceStore struct {
	db *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore { return &AttendanceStore{db: db} }

func (s *AttendanceStore) Transaction(fn func(tx services.AttendanceRepo) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&AttendanceStore{db: tx})
	})
}

func (s *AttendanceStore) ScheduleExists(jadwalID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.Schedule{}).Where("id = ?", jadwalID).Count(&n).Error
	return n > 0, err
}

func (s *AttendanceStore) FindByTriple(memberID, jamIbadahID, jadwalID uint) (*models.Attendance, error) {
	var row models.Attendance
	err := s.db.
		Where("member_id = ? AND jam_ibadah_id = ? AND jadwal_id = ?", memberID, jamIbadahID, jadwalID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *AttendanceStore) CreateAttendance(a *models.Attendance) error {
	return s.db.Create(a).Error
}

func (s *AttendanceStore) SaveAttendance(a *models.Attendance) error {
	return s.db.Save(a).Error
}

func (s *AttendanceStore) GetAttendance(id uint) (*models.Attendance, error) {
	var row models.Attendance
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *AttendanceStore) DeleteAttendance(id uint) error {
	return s.db.Delete(&models.Attendance{}, id).Error
}

const attendanceViewSelect = `
SELECT a.id, a.member_id, a.jam_ibadah_id, a.jadwal_id, a.hadir,
       m.nama AS member_nama, d.nama AS divisi_nama,
       ji.jam_ibadah, ji.nama_ibadah,
       j.tanggal, j.hari
FROM absensi a
JOIN members m ON m.id = a.member_id
LEFT JOIN divisi d ON d.id = m.divisi_id
JOIN jam_ibadah ji ON ji.id = a.jam_ibadah_id
JOIN jadwal j ON j.id = a.jadwal_id`

func (s *AttendanceStore) GetAttendanceView(id uint) (*services.AttendanceView, error) {
	var rows []services.AttendanceView
	err := s.db.Raw(attendanceViewSelect+" WHERE a.id = ?", id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, services.ErrAttendanceNotFound
	}
	return &rows[0], nil
}

func (s *AttendanceStore) ListAttendanceViews(f services.AttendanceFilter) ([]services.AttendanceView, error) {
	sql := attendanceViewSelect + " WHERE 1=1"
	args := []any{}
	if f.JadwalID != 0 {
		sql += " AND a.jadwal_id = ?"
		args = append(args, f.JadwalID)
	}
	if f.MemberID != 0 {
		sql += " AND a.member_id = ?"
		args = append(args, f.MemberID)
	}
	if f.JamIbadahID != 0 {
		sql += " AND a.jam_ibadah_id = ?"
		args = append(args, f.JamIbadahID)
	}
	if f.DivisiID != 0 {
		sql += " AND m.divisi_id = ?"
		args = append(args, f.DivisiID)
	}
	sql += " ORDER BY j.tanggal DESC, ji.jam_ibadah ASC, m.nama ASC"

	rows := []services.AttendanceView{}
	if err := s.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
