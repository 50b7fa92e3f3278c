package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/policy"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler { return &UserHandler{db: db} }

type userDTO struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	RoleID   uint    `json:"role_id"`
	DivisiID *uint   `json:"divisi_id"`
	Role     string  `json:"role"`
	Divisi   *string `json:"divisi"`
}

func (h *UserHandler) toDTO(u models.User) userDTO {
	dto := userDTO{ID: u.ID, Email: u.Email, RoleID: u.RoleID, DivisiID: u.DivisiID}
	var r models.Role
	if err := h.db.First(&r, u.RoleID).Error; err == nil {
		dto.Role = r.Nama
	}
	if u.DivisiID != nil {
		var d models.Division
		if err := h.db.First(&d, *u.DivisiID).Error; err == nil {
			dto.Divisi = &d.Nama
		}
	}
	return dto
}

// GET /api/users — khusus admin
func (h *UserHandler) List(c echo.Context) error {
	if err := policy.Authorize(actorFrom(c), policy.ActionListUsers, policy.Target{}); err != nil {
		return forbidden(c, err)
	}

	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal mengambil data pengguna"})
	}
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, h.toDTO(u))
	}
	return c.JSON(http.StatusOK, out)
}

// GET /api/users/:id — admin atau data sendiri
func (h *UserHandler) Get(c echo.Context) error {
	id := idParam(c)
	if err := policy.Authorize(actorFrom(c), policy.ActionViewUser, policy.Target{UserID: id}); err != nil {
		return forbidden(c, err)
	}

	var u models.User
	if err := h.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Pengguna tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal mengambil data pengguna"})
	}
	return c.JSON(http.StatusOK, h.toDTO(u))
}

type createUserReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   uint   `json:"role_id" validate:"required"`
	DivisiID *uint  `json:"divisi_id"`
}

// POST /api/users — khusus admin
func (h *UserHandler) Create(c echo.Context) error {
	if err := policy.Authorize(actorFrom(c), policy.ActionCreateUser, policy.Target{}); err != nil {
		return forbidden(c, err)
	}

	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email, password, dan role harus diisi dengan benar"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	var dup models.User
	if err := h.db.Where("email = ?", email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Email sudah digunakan"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal membuat pengguna baru"})
	}

	u := models.User{
		Email:    email,
		Password: string(hash),
		RoleID:   req.RoleID,
		DivisiID: req.DivisiID,
	}
	if err := h.db.Create(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal membuat pengguna baru"})
	}
	return c.JSON(http.StatusCreated, h.toDTO(u))
}

type updateUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   *uint  `json:"role_id"`
	DivisiID *uint  `json:"divisi_id"`
}

// PUT /api/users/:id — admin bebas, non-admin hanya profil sendiri.
// Ganti role khusus admin; reset password mengikuti aturan policy
// (admin hanya untuk PIC dan Semi Volunteer, non-admin hanya miliknya).
func (h *UserHandler) Update(c echo.Context) error {
	id := idParam(c)
	actor := actorFrom(c)

	if err := policy.Authorize(actor, policy.ActionUpdateUser, policy.Target{UserID: id}); err != nil {
		return forbidden(c, err)
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	var u models.User
	if err := h.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Pengguna tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal memperbarui pengguna"})
	}

	if req.RoleID != nil {
		if err := policy.Authorize(actor, policy.ActionChangeRole, policy.Target{UserID: id}); err != nil {
			return forbidden(c, err)
		}
		u.RoleID = *req.RoleID
	}
	if req.Email != "" {
		u.Email = strings.TrimSpace(strings.ToLower(req.Email))
	}
	if req.DivisiID != nil {
		u.DivisiID = req.DivisiID
	}

	if req.Password != "" {
		var targetRole models.Role
		if err := h.db.First(&targetRole, u.RoleID).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal memperbarui pengguna"})
		}
		if err := policy.Authorize(actor, policy.ActionResetPassword, policy.Target{UserID: id, Role: targetRole.Nama}); err != nil {
			return forbidden(c, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal memperbarui pengguna"})
		}
		u.Password = string(hash)
	}

	if err := h.db.Save(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal memperbarui pengguna"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    h.toDTO(u),
	})
}

// DELETE /api/users/:id — khusus admin
func (h *UserHandler) Delete(c echo.Context) error {
	if err := policy.Authorize(actorFrom(c), policy.ActionDeleteUser, policy.Target{}); err != nil {
		return forbidden(c, err)
	}

	id := idParam(c)
	var u models.User
	if err := h.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Pengguna tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal menghapus pengguna"})
	}
	if err := h.db.Delete(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal menghapus pengguna"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Pengguna berhasil dihapus"})
}
