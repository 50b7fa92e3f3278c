package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/NxM90/GSJS-Backends/services"
)

type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// GET /api/jadwal?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ScheduleHandler) List(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))

	views, err := h.svc.List(start, end)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /api/jadwal/:id
func (h *ScheduleHandler) Get(c echo.Context) error {
	view, err := h.svc.Get(idParam(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

type scheduleReq struct {
	Tanggal string `json:"tanggal"`
	Hari    string `json:"hari"`
	// pointer: nil = field tidak dikirim, asosiasi tidak disentuh saat update
	JamIbadahIDs *[]uint `json:"jam_ibadah_ids"`
}

// POST /api/jadwal
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	in := services.ScheduleInput{Tanggal: req.Tanggal, Hari: req.Hari}
	if req.JamIbadahIDs != nil {
		in.JamIbadahIDs = *req.JamIbadahIDs
	}
	view, err := h.svc.Create(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, view)
}

// PUT /api/jadwal/:id — kalau jam_ibadah_ids dikirim, seluruh set asosiasi
// diganti (termasuk jadi kosong kalau array kosong)
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	in := services.ScheduleInput{Tanggal: req.Tanggal, Hari: req.Hari}
	replaceSlots := req.JamIbadahIDs != nil
	if replaceSlots {
		in.JamIbadahIDs = *req.JamIbadahIDs
	}
	view, err := h.svc.Update(idParam(c), in, replaceSlots)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

type setWorshipTimesReq struct {
	JamIbadahIDs []uint `json:"jam_ibadah_ids"`
}

// PUT /api/jadwal/:id/jam-ibadah — ganti seluruh set jam ibadah jadwal
func (h *ScheduleHandler) SetWorshipTimes(c echo.Context) error {
	var req setWorshipTimesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	assocs, err := h.svc.SetWorshipTimes(idParam(c), req.JamIbadahIDs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Jam ibadah jadwal berhasil diperbarui",
		"data":    assocs,
	})
}

// DELETE /api/jadwal/:id
func (h *ScheduleHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(idParam(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Jadwal berhasil dihapus"})
}
