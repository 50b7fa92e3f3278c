package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
)

type RoleHandler struct {
	db *gorm.DB
}

func NewRoleHandler(db *gorm.DB) *RoleHandler { return &RoleHandler{db: db} }

// GET /api/role
func (h *RoleHandler) List(c echo.Context) error {
	var roles []models.Role
	if err := h.db.Order("id ASC").Find(&roles).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data jabatan"})
	}
	return c.JSON(http.StatusOK, roles)
}

// GET /api/role/:id
func (h *RoleHandler) Get(c echo.Context) error {
	var role models.Role
	if err := h.db.First(&role, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Jabatan tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data jabatan"})
	}
	return c.JSON(http.StatusOK, role)
}

type roleReq struct {
	Nama string `json:"nama" validate:"required"`
}

// POST /api/role
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	req.Nama = strings.TrimSpace(req.Nama)
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Nama jabatan harus diisi"})
	}

	var dup models.Role
	if err := h.db.Where("nama = ?", req.Nama).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Jabatan dengan nama ini sudah ada"})
	}

	role := models.Role{Nama: req.Nama}
	if err := h.db.Create(&role).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menambahkan jabatan"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Jabatan berhasil ditambahkan",
		"data":    role,
	})
}

// PUT /api/role/:id
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	req.Nama = strings.TrimSpace(req.Nama)
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Nama jabatan harus diisi"})
	}

	id := idParam(c)
	var role models.Role
	if err := h.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Jabatan tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui jabatan"})
	}

	var dup models.Role
	if err := h.db.Where("nama = ? AND id <> ?", req.Nama, id).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Jabatan dengan nama ini sudah ada"})
	}

	role.Nama = req.Nama
	if err := h.db.Save(&role).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui jabatan"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Jabatan berhasil diperbarui",
		"data":    role,
	})
}

// DELETE /api/role/:id
func (h *RoleHandler) Delete(c echo.Context) error {
	var role models.Role
	if err := h.db.First(&role, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Jabatan tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus jabatan"})
	}
	if err := h.db.Delete(&role).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus jabatan"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Jabatan berhasil dihapus"})
}
