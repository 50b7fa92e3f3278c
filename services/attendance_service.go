package services

import (
	"fmt"

	"github.com/NxM90/GSJS-Backends/models"
)

// AttendanceFilter filter opsional listing absensi.
type AttendanceFilter struct {
	JadwalID    uint
	MemberID    uint
	JamIbadahID uint
	DivisiID    uint
}

// AttendanceView baris absensi yang sudah di-join dengan anggota (+divisi),
// jam ibadah, dan jadwal.
type AttendanceView struct {
	ID          uint   `json:"id"`
	MemberID    uint   `json:"member_id"`
	JamIbadahID uint   `json:"jam_ibadah_id"`
	JadwalID    uint   `json:"jadwal_id"`
	Hadir       bool   `json:"hadir"`
	MemberNama  string `json:"member_nama"`
	DivisiNama  string `json:"divisi_nama"`
	JamIbadah   string `json:"jam_ibadah"`
	NamaIbadah  string `json:"nama_ibadah"`
	Tanggal     string `json:"tanggal"`
	Hari        string `json:"hari"`
}

// AttendanceRepo akses data AttendanceService.
type AttendanceRepo interface {
	Transaction(fn func(tx AttendanceRepo) error) error

	ScheduleExists(jadwalID uint) (bool, error)
	// FindByTriple mengembalikan (nil, nil) kalau belum ada.
	FindByTriple(memberID, jamIbadahID, jadwalID uint) (*models.Attendance, error)
	CreateAttendance(a *models.Attendance) error
	SaveAttendance(a *models.Attendance) error
	GetAttendance(id uint) (*models.Attendance, error)
	DeleteAttendance(id uint) error

	GetAttendanceView(id uint) (*AttendanceView, error)
	ListAttendanceViews(f AttendanceFilter) ([]AttendanceView, error)
}

type AttendanceService struct {
	repo AttendanceRepo
}

func NewAttendanceService(repo AttendanceRepo) *AttendanceService {
	return &AttendanceService{repo: repo}
}

// AttendanceRecordInput satu record pada submit absensi massal.
type AttendanceRecordInput struct {
	MemberID    uint `json:"member_id"`
	JamIbadahID uint `json:"jam_ibadah_id"`
	Hadir       bool `json:"hadir"`
}

// BatchResult hasil UpsertBatch: jumlah record valid yang diterapkan dan
// baris hasilnya.
type BatchResult struct {
	Count   int                 `json:"count"`
	Results []models.Attendance `json:"results"`
}

// UpsertBatch menyimpan satu batch absensi untuk sebuah jadwal. Record tanpa
// member_id atau jam_ibadah_id dilewati tanpa error. Record yang sudah ada
// (kunci member+jam+jadwal) di-update hadir-nya, sisanya dibuat baru. Seluruh
// loop berjalan dalam satu transaksi: satu kegagalan tak terduga membatalkan
// seluruh batch. Submit ulang batch yang sama aman (idempotent).
func (s *AttendanceService) UpsertBatch(jadwalID uint, records []AttendanceRecordInput) (*BatchResult, error) {
	ok, err := s.repo.ScheduleExists(jadwalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrScheduleNotFound
	}

	res := &BatchResult{Results: []models.Attendance{}}
	err = s.repo.Transaction(func(tx AttendanceRepo) error {
		for _, rec := range records {
			if rec.MemberID == 0 || rec.JamIbadahID == 0 {
				continue // record tidak lengkap: lewati, bukan error
			}
			existing, err := tx.FindByTriple(rec.MemberID, rec.JamIbadahID, jadwalID)
			if err != nil {
				return err
			}
			if existing != nil {
				existing.Hadir = rec.Hadir
				if err := tx.SaveAttendance(existing); err != nil {
					return err
				}
				res.Results = append(res.Results, *existing)
			} else {
				row := models.Attendance{
					MemberID:    rec.MemberID,
					JamIbadahID: rec.JamIbadahID,
					JadwalID:    jadwalID,
					Hadir:       rec.Hadir,
				}
				if err := tx.CreateAttendance(&row); err != nil {
					return err
				}
				res.Results = append(res.Results, row)
			}
			res.Count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateInput payload create absensi tunggal.
type CreateInput struct {
	MemberID    uint `json:"member_id"`
	JamIbadahID uint `json:"jam_ibadah_id"`
	JadwalID    uint `json:"jadwal_id"`
	Hadir       bool `json:"hadir"`
}

// Create membuat satu baris absensi. Berbeda dengan UpsertBatch, jalur ini
// menolak duplikat (member, jam ibadah, jadwal) dengan Conflict — proteksi
// terhadap submit ganda, bukan upsert.
func (s *AttendanceService) Create(in CreateInput) (*AttendanceView, error) {
	if in.MemberID == 0 || in.JamIbadahID == 0 || in.JadwalID == 0 {
		return nil, fmt.Errorf("%w: member_id, jam_ibadah_id, dan jadwal_id harus diisi", ErrInvalidInput)
	}
	existing, err := s.repo.FindByTriple(in.MemberID, in.JamIbadahID, in.JadwalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAttendanceExists
	}

	row := models.Attendance{
		MemberID:    in.MemberID,
		JamIbadahID: in.JamIbadahID,
		JadwalID:    in.JadwalID,
		Hadir:       in.Hadir,
	}
	if err := s.repo.CreateAttendance(&row); err != nil {
		return nil, err
	}
	return s.repo.GetAttendanceView(row.ID)
}

// Update mengubah hadir satu baris absensi.
func (s *AttendanceService) Update(id uint, hadir bool) (*AttendanceView, error) {
	row, err := s.repo.GetAttendance(id)
	if err != nil {
		return nil, err
	}
	row.Hadir = hadir
	if err := s.repo.SaveAttendance(row); err != nil {
		return nil, err
	}
	return s.repo.GetAttendanceView(id)
}

// Delete menghapus satu baris absensi.
func (s *AttendanceService) Delete(id uint) error {
	if _, err := s.repo.GetAttendance(id); err != nil {
		return err
	}
	return s.repo.DeleteAttendance(id)
}

// Get mengambil satu baris absensi beserta relasinya.
func (s *AttendanceService) Get(id uint) (*AttendanceView, error) {
	return s.repo.GetAttendanceView(id)
}

// List mengambil baris absensi ter-join, urut tanggal jadwal menurun, jam
// ibadah naik, lalu nama anggota naik.
func (s *AttendanceService) List(f AttendanceFilter) ([]AttendanceView, error) {
	return s.repo.ListAttendanceViews(f)
}
