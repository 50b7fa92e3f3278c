package services

import (
	"fmt"

	"github.com/NxM90/GSJS-Backends/models"
)

// WorshipSlot satu pasang jam+nama ibadah di dalam ScheduleView.
type WorshipSlot struct {
	Jam  string `json:"jam"`
	Nama string `json:"nama"`
}

// ScheduleView bentuk respons jadwal yang dipakai frontend: field jadwal
// ditambah daftar jam ibadah (urut sesuai urutan asosiasi) dan isSunday
// turunan dari hari == "Minggu".
type ScheduleView struct {
	ID            uint          `json:"id"`
	Tanggal       string        `json:"tanggal"`
	Hari          string        `json:"hari"`
	JamIbadah     []WorshipSlot `json:"jam_ibadah"`
	IsSunday      bool          `json:"isSunday"`
	FutureSundays []string      `json:"futureSundays"`
}

// ScheduleRepo akses data yang dibutuhkan ScheduleService. Transaction
// menjalankan fn dalam satu transaksi DB; repo yang diterima fn terikat
// pada transaksi itu.
type ScheduleRepo interface {
	Transaction(fn func(tx ScheduleRepo) error) error

	CreateSchedule(s *models.Schedule) error
	GetSchedule(id uint) (*models.Schedule, error)
	ListSchedules(start, end string) ([]models.Schedule, error)
	UpdateSchedule(s *models.Schedule) error
	DeleteSchedule(id uint) error

	DeleteAssociations(jadwalID uint) error
	CreateAssociation(a *models.ScheduleWorshipTime) error
	// ListAssociations urut berdasarkan id asosiasi (urutan insert).
	ListAssociations(jadwalID uint) ([]models.ScheduleWorshipTime, error)

	GetWorshipTime(id uint) (*models.WorshipTime, error)
	CountWorshipTimes(ids []uint) (int64, error)
}

type ScheduleService struct {
	repo ScheduleRepo
}

func NewScheduleService(repo ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// ScheduleInput payload create/update jadwal.
type ScheduleInput struct {
	Tanggal      string `json:"tanggal"`
	Hari         string `json:"hari"`
	JamIbadahIDs []uint `json:"jam_ibadah_ids"`
}

// Create membuat jadwal baru beserta asosiasinya dalam satu transaksi.
func (s *ScheduleService) Create(in ScheduleInput) (*ScheduleView, error) {
	if in.Tanggal == "" || in.Hari == "" {
		return nil, fmt.Errorf("%w: tanggal dan hari harus diisi", ErrInvalidInput)
	}

	sched := models.Schedule{Tanggal: in.Tanggal, Hari: in.Hari}
	err := s.repo.Transaction(func(tx ScheduleRepo) error {
		if err := tx.CreateSchedule(&sched); err != nil {
			return err
		}
		return replaceAssociations(tx, sched.ID, in.JamIbadahIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(sched.ID)
}

// SetWorshipTimes mengganti seluruh set asosiasi jam ibadah sebuah jadwal.
// Hapus semua lalu insert satu per satu di dalam satu transaksi — keadaan
// setengah-jadi tidak pernah terlihat. ID duplikat di input menghasilkan
// baris duplikat (perilaku lama dipertahankan).
func (s *ScheduleService) SetWorshipTimes(jadwalID uint, jamIbadahIDs []uint) ([]models.ScheduleWorshipTime, error) {
	if _, err := s.repo.GetSchedule(jadwalID); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(func(tx ScheduleRepo) error {
		return replaceAssociations(tx, jadwalID, jamIbadahIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.ListAssociations(jadwalID)
}

func replaceAssociations(tx ScheduleRepo, jadwalID uint, ids []uint) error {
	// Validasi seluruh id sebelum mutasi asosiasi: satu id tidak dikenal
	// membatalkan seluruh transaksi.
	if len(ids) > 0 {
		n, err := tx.CountWorshipTimes(uniqueIDs(ids))
		if err != nil {
			return err
		}
		if int(n) != len(uniqueIDs(ids)) {
			return fmt.Errorf("%w: jam_ibadah_id tidak dikenal", ErrInvalidInput)
		}
	}
	if err := tx.DeleteAssociations(jadwalID); err != nil {
		return err
	}
	for _, id := range ids {
		if err := tx.CreateAssociation(&models.ScheduleWorshipTime{JadwalID: jadwalID, JamIbadahID: id}); err != nil {
			return err
		}
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Update memperbarui field jadwal; kalau JamIbadahIDs != nil seluruh set
// asosiasi ikut diganti dalam transaksi yang sama.
func (s *ScheduleService) Update(id uint, in ScheduleInput, replaceSlots bool) (*ScheduleView, error) {
	sched, err := s.repo.GetSchedule(id)
	if err != nil {
		return nil, err
	}
	if in.Tanggal != "" {
		sched.Tanggal = in.Tanggal
	}
	if in.Hari != "" {
		sched.Hari = in.Hari
	}

	err = s.repo.Transaction(func(tx ScheduleRepo) error {
		if err := tx.UpdateSchedule(sched); err != nil {
			return err
		}
		if replaceSlots {
			return replaceAssociations(tx, id, in.JamIbadahIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete menghapus asosiasi lalu baris jadwal. Baris absensi yang menunjuk
// jadwal ini sengaja TIDAK ikut dihapus (riwayat kehadiran dipertahankan).
func (s *ScheduleService) Delete(id uint) error {
	if _, err := s.repo.GetSchedule(id); err != nil {
		return err
	}
	return s.repo.Transaction(func(tx ScheduleRepo) error {
		if err := tx.DeleteAssociations(id); err != nil {
			return err
		}
		return tx.DeleteSchedule(id)
	})
}

// Get merakit ScheduleView satu jadwal.
func (s *ScheduleService) Get(id uint) (*ScheduleView, error) {
	sched, err := s.repo.GetSchedule(id)
	if err != nil {
		return nil, err
	}
	view, err := s.buildView(*sched)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// List merakit ScheduleView untuk semua jadwal, opsional dibatasi rentang
// tanggal (inklusif), urut tanggal naik.
func (s *ScheduleService) List(start, end string) ([]ScheduleView, error) {
	scheds, err := s.repo.ListSchedules(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]ScheduleView, 0, len(scheds))
	for _, sc := range scheds {
		v, err := s.buildView(sc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *ScheduleService) buildView(sched models.Schedule) (ScheduleView, error) {
	assocs, err := s.repo.ListAssociations(sched.ID)
	if err != nil {
		return ScheduleView{}, err
	}
	slots := make([]WorshipSlot, 0, len(assocs))
	for _, a := range assocs {
		wt, err := s.repo.GetWorshipTime(a.JamIbadahID)
		if err != nil {
			return ScheduleView{}, err
		}
		slots = append(slots, WorshipSlot{Jam: wt.JamIbadah, Nama: wt.NamaIbadah})
	}
	return ScheduleView{
		ID:            sched.ID,
		Tanggal:       sched.Tanggal,
		Hari:          sched.Hari,
		JamIbadah:     slots,
		IsSunday:      sched.Hari == "Minggu",
		FutureSundays: []string{},
	}, nil
}
