package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
)

type DivisionHandler struct {
	db *gorm.DB
}

func NewDivisionHandler(db *gorm.DB) *DivisionHandler { return &DivisionHandler{db: db} }

// GET /api/divisi
func (h *DivisionHandler) List(c echo.Context) error {
	var divisi []models.Division
	if err := h.db.Order("id ASC").Find(&divisi).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data divisi"})
	}
	return c.JSON(http.StatusOK, divisi)
}

// GET /api/divisi/:id
func (h *DivisionHandler) Get(c echo.Context) error {
	var d models.Division
	if err := h.db.First(&d, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Divisi tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data divisi"})
	}
	return c.JSON(http.StatusOK, d)
}

type divisionReq struct {
	Nama string `json:"nama" validate:"required"`
}

// POST /api/divisi
func (h *DivisionHandler) Create(c echo.Context) error {
	var req divisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	req.Nama = strings.TrimSpace(req.Nama)
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Nama divisi harus diisi"})
	}

	var dup models.Division
	if err := h.db.Where("nama = ?", req.Nama).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Divisi dengan nama ini sudah ada"})
	}

	d := models.Division{Nama: req.Nama}
	if err := h.db.Create(&d).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menambahkan divisi"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Divisi berhasil ditambahkan",
		"data":    d,
	})
}

// PUT /api/divisi/:id
func (h *DivisionHandler) Update(c echo.Context) error {
	var req divisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	req.Nama = strings.TrimSpace(req.Nama)
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Nama divisi harus diisi"})
	}

	id := idParam(c)
	var d models.Division
	if err := h.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Divisi tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui divisi"})
	}

	var dup models.Division
	if err := h.db.Where("nama = ? AND id <> ?", req.Nama, id).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Divisi dengan nama ini sudah ada"})
	}

	d.Nama = req.Nama
	if err := h.db.Save(&d).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui divisi"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Divisi berhasil diperbarui",
		"data":    d,
	})
}

// DELETE /api/divisi/:id
func (h *DivisionHandler) Delete(c echo.Context) error {
	var d models.Division
	if err := h.db.First(&d, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Divisi tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus divisi"})
	}
	if err := h.db.Delete(&d).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus divisi"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Divisi berhasil dihapus"})
}
