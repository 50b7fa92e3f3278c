package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/repository"
	"github.com/NxM90/GSJS-Backends/storage"
)

type MemberHandler struct {
	db    *gorm.DB
	store *repository.MemberStore
}

func NewMemberHandler(db *gorm.DB, store *repository.MemberStore) *MemberHandler {
	return &MemberHandler{db: db, store: store}
}

type memberDTO struct {
	ID       uint    `json:"id"`
	Foto     string  `json:"foto"`
	Nama     string  `json:"nama"`
	DivisiID uint    `json:"divisi_id"`
	Divisi   *string `json:"divisi"`
	Posisi   string  `json:"posisi"`
	Kontak   string  `json:"kontak"`
	Status   string  `json:"status"`
	UserID   *uint   `json:"user_id"`
}

func (h *MemberHandler) toDTO(m models.Member) memberDTO {
	dto := memberDTO{
		ID: m.ID, Foto: m.Foto, Nama: m.Nama, DivisiID: m.DivisiID,
		Posisi: m.Posisi, Kontak: m.Kontak, Status: m.Status, UserID: m.UserID,
	}
	var d models.Division
	if err := h.db.First(&d, m.DivisiID).Error; err == nil {
		dto.Divisi = &d.Nama
	}
	return dto
}

// GET /api/members?divisi_id=
func (h *MemberHandler) List(c echo.Context) error {
	tx := h.db.Model(&models.Member{})
	if v := parseUint(c.QueryParam("divisi_id")); v != 0 {
		tx = tx.Where("divisi_id = ?", v)
	}
	var rows []models.Member
	if err := tx.Order("nama ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data anggota"})
	}
	out := make([]memberDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, h.toDTO(m))
	}
	return c.JSON(http.StatusOK, out)
}

// GET /api/members/:id
func (h *MemberHandler) Get(c echo.Context) error {
	var m models.Member
	if err := h.db.First(&m, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Anggota tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data anggota"})
	}
	return c.JSON(http.StatusOK, h.toDTO(m))
}

type memberReq struct {
	Foto     string `json:"foto"`
	Nama     string `json:"nama" validate:"required"`
	DivisiID uint   `json:"divisi_id" validate:"required"`
	Posisi   string `json:"posisi" validate:"required"`
	Kontak   string `json:"kontak" validate:"required"`
	Status   string `json:"status"`
}

// POST /api/members
func (h *MemberHandler) Create(c echo.Context) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Nama, divisi, posisi, dan kontak harus diisi"})
	}
	if req.Status == "" {
		req.Status = models.MemberStatusActive
	}
	if req.Foto == "" {
		req.Foto = storage.DefaultPhotoPath
	}

	m := models.Member{
		Foto:     req.Foto,
		Nama:     req.Nama,
		DivisiID: req.DivisiID,
		Posisi:   req.Posisi,
		Kontak:   req.Kontak,
		Status:   req.Status,
	}
	if err := h.db.Create(&m).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat membuat anggota baru"})
	}
	return c.JSON(http.StatusCreated, h.toDTO(m))
}

// PUT /api/members/:id
func (h *MemberHandler) Update(c echo.Context) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	var m models.Member
	if err := h.db.First(&m, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Anggota tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui anggota"})
	}

	if req.Foto != "" {
		m.Foto = req.Foto
	}
	if req.Nama != "" {
		m.Nama = req.Nama
	}
	if req.DivisiID != 0 {
		m.DivisiID = req.DivisiID
	}
	if req.Posisi != "" {
		m.Posisi = req.Posisi
	}
	if req.Kontak != "" {
		m.Kontak = req.Kontak
	}
	if req.Status != "" {
		m.Status = req.Status
	}

	if err := h.db.Save(&m).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat memperbarui anggota"})
	}
	return c.JSON(http.StatusOK, h.toDTO(m))
}

// DELETE /api/members/:id — hanya baris anggota, akun user dibiarkan
func (h *MemberHandler) Delete(c echo.Context) error {
	var m models.Member
	if err := h.db.First(&m, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Anggota tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus anggota"})
	}
	if err := h.db.Delete(&m).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus anggota"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Anggota berhasil dihapus"})
}

// ===== Listing gabungan anggota + akun (halaman manajemen) =====

// GET /api/users-members?search=&divisi_id=
func (h *MemberHandler) ListWithUsers(c echo.Context) error {
	rows, err := h.store.ListWithUsers(strings.TrimSpace(c.QueryParam("search")), parseUint(c.QueryParam("divisi_id")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data anggota"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/users-members/:id
func (h *MemberHandler) GetWithUser(c echo.Context) error {
	row, err := h.store.GetWithUser(idParam(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Anggota tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengambil data anggota"})
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /api/users-members/:id — anggota + akun user tertaut, satu transaksi
func (h *MemberHandler) DeleteWithUser(c echo.Context) error {
	var m models.Member
	if err := h.db.First(&m, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Anggota tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus anggota"})
	}
	if err := h.store.DeleteWithUser(&m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat menghapus anggota"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Anggota berhasil dihapus"})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// PATCH /api/members/:id/status
func (h *MemberHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	if req.Status != models.MemberStatusActive && req.Status != models.MemberStatusInactive {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Status tidak valid. Gunakan 'Active' atau 'Inactive'"})
	}

	var m models.Member
	if err := h.db.First(&m, idParam(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Anggota tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengubah status anggota"})
	}
	m.Status = req.Status
	if err := h.db.Save(&m).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan saat mengubah status anggota"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Status anggota berhasil diubah menjadi " + req.Status})
}
