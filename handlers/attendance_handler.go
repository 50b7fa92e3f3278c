package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NxM90/GSJS-Backends/services"
)

type AttendanceHandler struct {
	svc *services.AttendanceService
}

func NewAttendanceHandler(svc *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// GET /api/absensi?jadwal_id=&member_id=&jam_ibadah_id=&divisi_id=
func (h *AttendanceHandler) List(c echo.Context) error {
	f := services.AttendanceFilter{
		JadwalID:    parseUint(c.QueryParam("jadwal_id")),
		MemberID:    parseUint(c.QueryParam("member_id")),
		JamIbadahID: parseUint(c.QueryParam("jam_ibadah_id")),
		DivisiID:    parseUint(c.QueryParam("divisi_id")),
	}
	rows, err := h.svc.List(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/absensi/:id
func (h *AttendanceHandler) Get(c echo.Context) error {
	row, err := h.svc.Get(idParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

type bulkReq struct {
	JadwalID uint                             `json:"jadwal_id"`
	Records  []services.AttendanceRecordInput `json:"records"`
}

// POST /api/absensi/bulk — simpan satu batch absensi (create atau update)
func (h *AttendanceHandler) Bulk(c echo.Context) error {
	var req bulkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	if req.JadwalID == 0 || req.Records == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Data tidak valid. Diperlukan jadwal_id dan records (array)"})
	}

	res, err := h.svc.UpsertBatch(req.JadwalID, req.Records)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Absensi berhasil disimpan",
		"count":   res.Count,
		"results": res.Results,
	})
}

// POST /api/absensi — create tunggal, tolak duplikat
func (h *AttendanceHandler) Create(c echo.Context) error {
	var req services.CreateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	row, err := h.svc.Create(req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

type updateAttendanceReq struct {
	Hadir bool `json:"hadir"`
}

// PUT /api/absensi/:id
func (h *AttendanceHandler) Update(c echo.Context) error {
	var req updateAttendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	row, err := h.svc.Update(idParam(c), req.Hadir)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /api/absensi/:id
func (h *AttendanceHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(idParam(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Absensi berhasil dihapus"})
}
