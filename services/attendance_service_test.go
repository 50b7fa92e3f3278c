package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NxM90/GSJS-Backends/models"
)

type fakeAttendanceRepo struct {
	scheduleIDs map[uint]bool
	rows        map[uint]models.Attendance
	nextID      uint

	// CreateAttendance gagal setelah n panggilan sukses; -1 = tidak pernah
	failCreateAfter int
	createCalls     int
}

func newFakeAttendanceRepo(scheduleIDs ...uint) *fakeAttendanceRepo {
	r := &fakeAttendanceRepo{
		scheduleIDs:     map[uint]bool{},
		rows:            map[uint]models.Attendance{},
		failCreateAfter: -1,
	}
	for _, id := range scheduleIDs {
		r.scheduleIDs[id] = true
	}
	return r
}

func (r *fakeAttendanceRepo) Transaction(fn func(tx AttendanceRepo) error) error {
	snap := make(map[uint]models.Attendance, len(r.rows))
	for k, v := range r.rows {
		snap[k] = v
	}
	if err := fn(r); err != nil {
		r.rows = snap
		return err
	}
	return nil
}

func (r *fakeAttendanceRepo) ScheduleExists(jadwalID uint) (bool, error) {
	return r.scheduleIDs[jadwalID], nil
}

func (r *fakeAttendanceRepo) FindByTriple(memberID, jamIbadahID, jadwalID uint) (*models.Attendance, error) {
	for _, a := range r.rows {
		if a.MemberID == memberID && a.JamIbadahID == jamIbadahID && a.JadwalID == jadwalID {
			row := a
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) CreateAttendance(a *models.Attendance) error {
	if r.failCreateAfter >= 0 && r.createCalls >= r.failCreateAfter {
		return errors.New("insert gagal")
	}
	r.createCalls++
	r.nextID++
	a.ID = r.nextID
	r.rows[a.ID] = *a
	return nil
}

func (r *fakeAttendanceRepo) SaveAttendance(a *models.Attendance) error {
	if _, ok := r.rows[a.ID]; !ok {
		return ErrAttendanceNotFound
	}
	r.rows[a.ID] = *a
	return nil
}

func (r *fakeAttendanceRepo) GetAttendance(id uint) (*models.Attendance, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, ErrAttendanceNotFound
	}
	return &a, nil
}

func (r *fakeAttendanceRepo) DeleteAttendance(id uint) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeAttendanceRepo) GetAttendanceView(id uint) (*AttendanceView, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, ErrAttendanceNotFound
	}
	return &AttendanceView{
		ID:          a.ID,
		MemberID:    a.MemberID,
		JamIbadahID: a.JamIbadahID,
		JadwalID:    a.JadwalID,
		Hadir:       a.Hadir,
	}, nil
}

func (r *fakeAttendanceRepo) ListAttendanceViews(f AttendanceFilter) ([]AttendanceView, error) {
	out := []AttendanceView{}
	for _, a := range r.rows {
		if f.JadwalID != 0 && a.JadwalID != f.JadwalID {
			continue
		}
		if f.MemberID != 0 && a.MemberID != f.MemberID {
			continue
		}
		if f.JamIbadahID != 0 && a.JamIbadahID != f.JamIbadahID {
			continue
		}
		v, _ := r.GetAttendanceView(a.ID)
		out = append(out, *v)
	}
	return out, nil
}

func TestUpsertBatchUnknownSchedule(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo())
	_, err := svc.UpsertBatch(9, []AttendanceRecordInput{{MemberID: 1, JamIbadahID: 1, Hadir: true}})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestUpsertBatchCreatesRows(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)

	res, err := svc.UpsertBatch(5, []AttendanceRecordInput{
		{MemberID: 1, JamIbadahID: 1, Hadir: true},
		{MemberID: 2, JamIbadahID: 1, Hadir: false},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 2)
	assert.True(t, res.Results[0].Hadir)
	assert.False(t, res.Results[1].Hadir)
	assert.Len(t, repo.rows, 2)
}

func TestUpsertBatchIdempotent(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)

	records := []AttendanceRecordInput{
		{MemberID: 1, JamIbadahID: 1, Hadir: false},
		{MemberID: 2, JamIbadahID: 1, Hadir: true},
	}
	_, err := svc.UpsertBatch(5, records)
	require.NoError(t, err)

	// submit ulang dengan hadir berbeda: baris di-update, tidak bertambah
	records[0].Hadir = true
	res, err := svc.UpsertBatch(5, records)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Len(t, repo.rows, 2)

	got, err := repo.FindByTriple(1, 1, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Hadir)
}

func TestUpsertBatchSkipsIncompleteRecords(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)

	res, err := svc.UpsertBatch(5, []AttendanceRecordInput{
		{MemberID: 0, JamIbadahID: 1, Hadir: true},
		{MemberID: 1, JamIbadahID: 0, Hadir: true},
		{MemberID: 1, JamIbadahID: 1, Hadir: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Len(t, repo.rows, 1)
}

func TestUpsertBatchEmpty(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(5))
	res, err := svc.UpsertBatch(5, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, []models.Attendance{}, res.Results)
}

func TestUpsertBatchRollsBackOnFailure(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	repo.failCreateAfter = 1
	svc := NewAttendanceService(repo)

	_, err := svc.UpsertBatch(5, []AttendanceRecordInput{
		{MemberID: 1, JamIbadahID: 1, Hadir: true},
		{MemberID: 2, JamIbadahID: 1, Hadir: true},
	})
	require.Error(t, err)
	// record pertama ikut batal bersama seluruh batch
	assert.Empty(t, repo.rows)
}

func TestAttendanceCreate(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)

	view, err := svc.Create(CreateInput{MemberID: 1, JamIbadahID: 2, JadwalID: 5, Hadir: true})
	require.NoError(t, err)
	assert.True(t, view.Hadir)
	assert.Equal(t, uint(5), view.JadwalID)
}

func TestAttendanceCreateValidation(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(5))
	for _, in := range []CreateInput{
		{JamIbadahID: 2, JadwalID: 5},
		{MemberID: 1, JadwalID: 5},
		{MemberID: 1, JamIbadahID: 2},
	} {
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestAttendanceCreateDuplicate(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)

	_, err := svc.Create(CreateInput{MemberID: 1, JamIbadahID: 2, JadwalID: 5, Hadir: false})
	require.NoError(t, err)

	// kunci sama: ditolak Conflict, bukan di-upsert
	_, err = svc.Create(CreateInput{MemberID: 1, JamIbadahID: 2, JadwalID: 5, Hadir: true})
	assert.ErrorIs(t, err, ErrAttendanceExists)
	assert.Len(t, repo.rows, 1)
}

func TestAttendanceUpdate(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)
	view, err := svc.Create(CreateInput{MemberID: 1, JamIbadahID: 2, JadwalID: 5, Hadir: false})
	require.NoError(t, err)

	updated, err := svc.Update(view.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Hadir)

	_, err = svc.Update(99, true)
	assert.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestAttendanceDelete(t *testing.T) {
	repo := newFakeAttendanceRepo(5)
	svc := NewAttendanceService(repo)
	view, err := svc.Create(CreateInput{MemberID: 1, JamIbadahID: 2, JadwalID: 5, Hadir: false})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(view.ID))
	assert.Empty(t, repo.rows)

	assert.ErrorIs(t, svc.Delete(view.ID), ErrAttendanceNotFound)
}

func TestAttendanceListFilters(t *testing.T) {
	repo := newFakeAttendanceRepo(5, 6)
	svc := NewAttendanceService(repo)
	_, err := svc.UpsertBatch(5, []AttendanceRecordInput{
		{MemberID: 1, JamIbadahID: 1, Hadir: true},
		{MemberID: 2, JamIbadahID: 2, Hadir: true},
	})
	require.NoError(t, err)
	_, err = svc.UpsertBatch(6, []AttendanceRecordInput{
		{MemberID: 1, JamIbadahID: 1, Hadir: false},
	})
	require.NoError(t, err)

	views, err := svc.List(AttendanceFilter{JadwalID: 5})
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = svc.List(AttendanceFilter{MemberID: 1})
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = svc.List(AttendanceFilter{JadwalID: 6, JamIbadahID: 1})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Hadir)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindNotFound, Classify(ErrScheduleNotFound))
	assert.Equal(t, KindNotFound, Classify(ErrAttendanceNotFound))
	assert.Equal(t, KindValidation, Classify(ErrInvalidInput))
	assert.Equal(t, KindConflict, Classify(ErrAttendanceExists))
	assert.Equal(t, KindInternal, Classify(errors.New("lain-lain")))
}
