package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
)

type WorshipTimeHandler struct {
	db *gorm.DB
}

func NewWorshipTimeHandler(db *gorm.DB) *WorshipTimeHandler { return &WorshipTimeHandler{db: db} }

// GET /api/jam-ibadah
func (h *WorshipTimeHandler) List(c echo.Context) error {
	var rows []models.WorshipTime
	if err := h.db.Order("jam_ibadah ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data jam ibadah"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/jam-ibadah/:id
func (h *WorshipTimeHandler) Get(c echo.Context) error {
	var row models.WorshipTime
	if err := h.db.First(&row, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Jam ibadah tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data jam ibadah"})
	}
	return c.JSON(http.StatusOK, row)
}

type worshipTimeReq struct {
	JamIbadah  string `json:"jam_ibadah" validate:"required"`
	NamaIbadah string `json:"nama_ibadah" validate:"required"`
}

// POST /api/jam-ibadah
func (h *WorshipTimeHandler) Create(c echo.Context) error {
	var req worshipTimeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	req.JamIbadah = strings.TrimSpace(req.JamIbadah)
	req.NamaIbadah = strings.TrimSpace(req.NamaIbadah)
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Jam dan nama ibadah harus diisi"})
	}

	// pasangan (jam, nama) harus unik
	var dup models.WorshipTime
	err := h.db.Where("jam_ibadah = ? AND nama_ibadah = ?", req.JamIbadah, req.NamaIbadah).First(&dup).Error
	if err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Jam ibadah dengan nama tersebut sudah ada"})
	}

	row := models.WorshipTime{JamIbadah: req.JamIbadah, NamaIbadah: req.NamaIbadah}
	if err := h.db.Create(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat membuat jam ibadah baru"})
	}
	return c.JSON(http.StatusCreated, row)
}

// PUT /api/jam-ibadah/:id
func (h *WorshipTimeHandler) Update(c echo.Context) error {
	var req worshipTimeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	var row models.WorshipTime
	if err := h.db.First(&row, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Jam ibadah tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui jam ibadah"})
	}

	if v := strings.TrimSpace(req.JamIbadah); v != "" {
		row.JamIbadah = v
	}
	if v := strings.TrimSpace(req.NamaIbadah); v != "" {
		row.NamaIbadah = v
	}
	if err := h.db.Save(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui jam ibadah"})
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /api/jam-ibadah/:id
func (h *WorshipTimeHandler) Delete(c echo.Context) error {
	var row models.WorshipTime
	if err := h.db.First(&row, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Jam ibadah tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus jam ibadah"})
	}
	if err := h.db.Delete(&row).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus jam ibadah"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Jam ibadah berhasil dihapus"})
}
