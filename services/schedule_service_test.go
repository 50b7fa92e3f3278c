package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NxM90/GSJS-Backends/models"
)

// fakeScheduleRepo implementasi in-memory ScheduleRepo. Transaction meniru
// rollback: state disalin sebelum fn jalan dan dipulihkan kalau fn error.
type fakeScheduleRepo struct {
	schedules    map[uint]models.Schedule
	assocs       []models.ScheduleWorshipTime
	worshipTimes map[uint]models.WorshipTime
	nextSchedID  uint
	nextAssocID  uint

	failCreateAssociation bool
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules:    map[uint]models.Schedule{},
		worshipTimes: map[uint]models.WorshipTime{},
	}
}

func (r *fakeScheduleRepo) addWorshipTime(id uint, jam, nama string) {
	r.worshipTimes[id] = models.WorshipTime{ID: id, JamIbadah: jam, NamaIbadah: nama}
}

func (r *fakeScheduleRepo) addSchedule(tanggal, hari string) uint {
	r.nextSchedID++
	r.schedules[r.nextSchedID] = models.Schedule{ID: r.nextSchedID, Tanggal: tanggal, Hari: hari}
	return r.nextSchedID
}

func (r *fakeScheduleRepo) snapshot() (map[uint]models.Schedule, []models.ScheduleWorshipTime) {
	sc := make(map[uint]models.Schedule, len(r.schedules))
	for k, v := range r.schedules {
		sc[k] = v
	}
	as := append([]models.ScheduleWorshipTime(nil), r.assocs...)
	return sc, as
}

func (r *fakeScheduleRepo) Transaction(fn func(tx ScheduleRepo) error) error {
	sc, as := r.snapshot()
	if err := fn(r); err != nil {
		r.schedules, r.assocs = sc, as
		return err
	}
	return nil
}

func (r *fakeScheduleRepo) CreateSchedule(s *models.Schedule) error {
	r.nextSchedID++
	s.ID = r.nextSchedID
	r.schedules[s.ID] = *s
	return nil
}

func (r *fakeScheduleRepo) GetSchedule(id uint) (*models.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, ErrScheduleNotFound
	}
	return &s, nil
}

func (r *fakeScheduleRepo) ListSchedules(start, end string) ([]models.Schedule, error) {
	out := []models.Schedule{}
	for _, s := range r.schedules {
		if start != "" && s.Tanggal < start {
			continue
		}
		if end != "" && s.Tanggal > end {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tanggal < out[j].Tanggal })
	return out, nil
}

func (r *fakeScheduleRepo) UpdateSchedule(s *models.Schedule) error {
	if _, ok := r.schedules[s.ID]; !ok {
		return ErrScheduleNotFound
	}
	r.schedules[s.ID] = *s
	return nil
}

func (r *fakeScheduleRepo) DeleteSchedule(id uint) error {
	delete(r.schedules, id)
	return nil
}

func (r *fakeScheduleRepo) DeleteAssociations(jadwalID uint) error {
	kept := r.assocs[:0]
	for _, a := range r.assocs {
		if a.JadwalID != jadwalID {
			kept = append(kept, a)
		}
	}
	r.assocs = append([]models.ScheduleWorshipTime(nil), kept...)
	return nil
}

func (r *fakeScheduleRepo) CreateAssociation(a *models.ScheduleWorshipTime) error {
	if r.failCreateAssociation {
		return errors.New("insert gagal")
	}
	r.nextAssocID++
	a.ID = r.nextAssocID
	r.assocs = append(r.assocs, *a)
	return nil
}

func (r *fakeScheduleRepo) ListAssociations(jadwalID uint) ([]models.ScheduleWorshipTime, error) {
	out := []models.ScheduleWorshipTime{}
	for _, a := range r.assocs {
		if a.JadwalID == jadwalID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeScheduleRepo) GetWorshipTime(id uint) (*models.WorshipTime, error) {
	wt, ok := r.worshipTimes[id]
	if !ok {
		return nil, errors.New("jam ibadah tidak ditemukan")
	}
	return &wt, nil
}

func (r *fakeScheduleRepo) CountWorshipTimes(ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.worshipTimes[id]; ok {
			n++
		}
	}
	return n, nil
}

func TestScheduleCreate(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	repo.addWorshipTime(2, "10:00", "Ibadah Raya 2")
	svc := NewScheduleService(repo)

	view, err := svc.Create(ScheduleInput{
		Tanggal:      "2025-01-05",
		Hari:         "Minggu",
		JamIbadahIDs: []uint{2, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-01-05", view.Tanggal)
	assert.True(t, view.IsSunday)
	assert.Equal(t, []string{}, view.FutureSundays)
	// urutan slot mengikuti urutan input, bukan urutan id jam ibadah
	require.Len(t, view.JamIbadah, 2)
	assert.Equal(t, "10:00", view.JamIbadah[0].Jam)
	assert.Equal(t, "08:00", view.JamIbadah[1].Jam)
}

func TestScheduleCreateValidation(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	_, err := svc.Create(ScheduleInput{Hari: "Minggu"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ScheduleInput{Tanggal: "2025-01-05"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScheduleCreateUnknownWorshipTimeRollsBack(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	svc := NewScheduleService(repo)

	_, err := svc.Create(ScheduleInput{
		Tanggal:      "2025-01-05",
		Hari:         "Minggu",
		JamIbadahIDs: []uint{1, 99},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	// jadwal yang sempat dibuat di dalam transaksi ikut batal
	assert.Empty(t, repo.schedules)
	assert.Empty(t, repo.assocs)
}

func TestScheduleIsSundayOnlyForMinggu(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)

	for _, tc := range []struct {
		hari string
		want bool
	}{
		{"Minggu", true},
		{"minggu", false},
		{"Sabtu", false},
	} {
		view, err := svc.Create(ScheduleInput{Tanggal: "2025-01-05", Hari: tc.hari})
		require.NoError(t, err)
		assert.Equal(t, tc.want, view.IsSunday, "hari %q", tc.hari)
	}
}

func TestScheduleSetWorshipTimes(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	repo.addWorshipTime(2, "10:00", "Ibadah Raya 2")
	id := repo.addSchedule("2025-01-05", "Minggu")
	svc := NewScheduleService(repo)

	assocs, err := svc.SetWorshipTimes(id, []uint{1, 2})
	require.NoError(t, err)
	require.Len(t, assocs, 2)

	// set baru mengganti total, bukan menambah
	assocs, err = svc.SetWorshipTimes(id, []uint{2})
	require.NoError(t, err)
	require.Len(t, assocs, 1)
	assert.Equal(t, uint(2), assocs[0].JamIbadahID)

	// daftar kosong mengosongkan seluruh asosiasi
	assocs, err = svc.SetWorshipTimes(id, []uint{})
	require.NoError(t, err)
	assert.Empty(t, assocs)
}

func TestScheduleSetWorshipTimesKeepsDuplicates(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	id := repo.addSchedule("2025-01-05", "Minggu")
	svc := NewScheduleService(repo)

	assocs, err := svc.SetWorshipTimes(id, []uint{1, 1, 1})
	require.NoError(t, err)
	assert.Len(t, assocs, 3)
}

func TestScheduleSetWorshipTimesAtomic(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	id := repo.addSchedule("2025-01-05", "Minggu")
	svc := NewScheduleService(repo)

	_, err := svc.SetWorshipTimes(id, []uint{1})
	require.NoError(t, err)

	// id tidak dikenal: set lama harus tetap utuh
	_, err = svc.SetWorshipTimes(id, []uint{1, 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assocs, err := repo.ListAssociations(id)
	require.NoError(t, err)
	assert.Len(t, assocs, 1)

	// kegagalan insert di tengah: tidak ada keadaan setengah-jadi
	repo.failCreateAssociation = true
	_, err = svc.SetWorshipTimes(id, []uint{1, 1})
	require.Error(t, err)
	assocs, err = repo.ListAssociations(id)
	require.NoError(t, err)
	assert.Len(t, assocs, 1)
}

func TestScheduleSetWorshipTimesUnknownSchedule(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	_, err := svc.SetWorshipTimes(42, []uint{1})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestScheduleUpdate(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	id := repo.addSchedule("2025-01-05", "Minggu")
	svc := NewScheduleService(repo)
	_, err := svc.SetWorshipTimes(id, []uint{1})
	require.NoError(t, err)

	// field kosong = tidak diubah; replaceSlots false = asosiasi dibiarkan
	view, err := svc.Update(id, ScheduleInput{Hari: "Sabtu"}, false)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", view.Tanggal)
	assert.Equal(t, "Sabtu", view.Hari)
	assert.False(t, view.IsSunday)
	assert.Len(t, view.JamIbadah, 1)

	// replaceSlots true dengan daftar kosong mengosongkan asosiasi
	view, err = svc.Update(id, ScheduleInput{}, true)
	require.NoError(t, err)
	assert.Empty(t, view.JamIbadah)
}

func TestScheduleUpdateNotFound(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	_, err := svc.Update(7, ScheduleInput{Tanggal: "2025-02-01"}, false)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestScheduleDelete(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addWorshipTime(1, "08:00", "Ibadah Raya 1")
	id := repo.addSchedule("2025-01-05", "Minggu")
	svc := NewScheduleService(repo)
	_, err := svc.SetWorshipTimes(id, []uint{1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(id))
	assert.Empty(t, repo.schedules)
	assert.Empty(t, repo.assocs)

	assert.ErrorIs(t, svc.Delete(id), ErrScheduleNotFound)
}

func TestScheduleList(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.addSchedule("2025-01-12", "Minggu")
	repo.addSchedule("2025-01-05", "Minggu")
	repo.addSchedule("2025-02-02", "Minggu")
	svc := NewScheduleService(repo)

	views, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "2025-01-05", views[0].Tanggal)
	assert.Equal(t, "2025-02-02", views[2].Tanggal)

	// rentang inklusif di kedua ujung
	views, err = svc.List("2025-01-05", "2025-01-12")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "2025-01-12", views[1].Tanggal)
}

func TestScheduleGetNotFound(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	_, err := svc.Get(99)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
