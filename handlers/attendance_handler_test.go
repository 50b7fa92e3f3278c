package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/services"
)

// stubAttendanceRepo implementasi in-memory services.AttendanceRepo untuk
// menguji pemetaan error service -> status HTTP di handler.
type stubAttendanceRepo struct {
	scheduleIDs map[uint]bool
	rows        map[uint]models.Attendance
	nextID      uint
	listErr     error
}

func newStubAttendanceRepo(scheduleIDs ...uint) *stubAttendanceRepo {
	r := &stubAttendanceRepo{scheduleIDs: map[uint]bool{}, rows: map[uint]models.Attendance{}}
	for _, id := range scheduleIDs {
		r.scheduleIDs[id] = true
	}
	return r
}

func (r *stubAttendanceRepo) Transaction(fn func(tx services.AttendanceRepo) error) error {
	return fn(r)
}

func (r *stubAttendanceRepo) ScheduleExists(jadwalID uint) (bool, error) {
	return r.scheduleIDs[jadwalID], nil
}

func (r *stubAttendanceRepo) FindByTriple(memberID, jamIbadahID, jadwalID uint) (*models.Attendance, error) {
	for _, a := range r.rows {
		if a.MemberID == memberID && a.JamIbadahID == jamIbadahID && a.JadwalID == jadwalID {
			row := a
			return &row, nil
		}
	}
	return nil, nil
}

func (r *stubAttendanceRepo) CreateAttendance(a *models.Attendance) error {
	r.nextID++
	a.ID = r.nextID
	r.rows[a.ID] = *a
	return nil
}

func (r *stubAttendanceRepo) SaveAttendance(a *models.Attendance) error {
	r.rows[a.ID] = *a
	return nil
}

func (r *stubAttendanceRepo) GetAttendance(id uint) (*models.Attendance, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, services.ErrAttendanceNotFound
	}
	return &a, nil
}

func (r *stubAttendanceRepo) DeleteAttendance(id uint) error {
	delete(r.rows, id)
	return nil
}

func (r *stubAttendanceRepo) GetAttendanceView(id uint) (*services.AttendanceView, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, services.ErrAttendanceNotFound
	}
	return &services.AttendanceView{ID: a.ID, MemberID: a.MemberID, JamIbadahID: a.JamIbadahID, JadwalID: a.JadwalID, Hadir: a.Hadir}, nil
}

func (r *stubAttendanceRepo) ListAttendanceViews(f services.AttendanceFilter) ([]services.AttendanceView, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []services.AttendanceView{}
	for _, a := range r.rows {
		v, _ := r.GetAttendanceView(a.ID)
		out = append(out, *v)
	}
	return out, nil
}

func jsonRequest(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAttendanceBulkHandler(t *testing.T) {
	repo := newStubAttendanceRepo(5)
	h := NewAttendanceHandler(services.NewAttendanceService(repo))

	body := `{"jadwal_id":5,"records":[{"member_id":1,"jam_ibadah_id":2,"hadir":true},{"member_id":2,"jam_ibadah_id":2,"hadir":false}]}`
	c, rec := jsonRequest(http.MethodPost, "/api/absensi/bulk", body)
	require.NoError(t, h.Bulk(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), "Absensi berhasil disimpan")
}

func TestAttendanceBulkHandlerRejectsMissingFields(t *testing.T) {
	h := NewAttendanceHandler(services.NewAttendanceService(newStubAttendanceRepo(5)))

	for _, body := range []string{
		`{"records":[{"member_id":1,"jam_ibadah_id":2}]}`, // tanpa jadwal_id
		`{"jadwal_id":5}`, // tanpa records
	} {
		c, rec := jsonRequest(http.MethodPost, "/api/absensi/bulk", body)
		require.NoError(t, h.Bulk(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "Diperlukan jadwal_id dan records")
	}
}

func TestAttendanceBulkHandlerUnknownSchedule(t *testing.T) {
	h := NewAttendanceHandler(services.NewAttendanceService(newStubAttendanceRepo()))

	c, rec := jsonRequest(http.MethodPost, "/api/absensi/bulk", `{"jadwal_id":9,"records":[]}`)
	require.NoError(t, h.Bulk(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "jadwal tidak ditemukan")
}

func TestAttendanceCreateHandlerConflict(t *testing.T) {
	repo := newStubAttendanceRepo(5)
	h := NewAttendanceHandler(services.NewAttendanceService(repo))

	body := `{"member_id":1,"jam_ibadah_id":2,"jadwal_id":5,"hadir":true}`
	c, rec := jsonRequest(http.MethodPost, "/api/absensi", body)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonRequest(http.MethodPost, "/api/absensi", body)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceCreateHandlerValidation(t *testing.T) {
	h := NewAttendanceHandler(services.NewAttendanceService(newStubAttendanceRepo(5)))

	c, rec := jsonRequest(http.MethodPost, "/api/absensi", `{"member_id":1,"jadwal_id":5}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceGetHandlerNotFound(t *testing.T) {
	h := NewAttendanceHandler(services.NewAttendanceService(newStubAttendanceRepo(5)))

	c, rec := jsonRequest(http.MethodGet, "/api/absensi/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceListHandlerMasksInternalError(t *testing.T) {
	repo := newStubAttendanceRepo(5)
	repo.listErr = errors.New("koneksi database putus")
	h := NewAttendanceHandler(services.NewAttendanceService(repo))

	c, rec := jsonRequest(http.MethodGet, "/api/absensi", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// detail internal tidak bocor ke caller
	assert.NotContains(t, rec.Body.String(), "koneksi database")
	assert.Contains(t, rec.Body.String(), "Terjadi kesalahan pada server")
}
