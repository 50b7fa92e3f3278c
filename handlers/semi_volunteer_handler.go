package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/mailer"
	"github.com/NxM90/GSJS-Backends/models"
	"github.com/NxM90/GSJS-Backends/policy"
	"github.com/NxM90/GSJS-Backends/storage"
)

// password awal akun semi volunteer; user diminta ganti setelah login pertama
const defaultSemiVolunteerPassword = "semivolun"

type SemiVolunteerHandler struct {
	db     *gorm.DB
	store  *storage.Storage
	mailer mailer.Mailer
}

func NewSemiVolunteerHandler(db *gorm.DB, store *storage.Storage, m mailer.Mailer) *SemiVolunteerHandler {
	return &SemiVolunteerHandler{db: db, store: store, mailer: m}
}

type semiVolunteerReq struct {
	Email       string `form:"email" validate:"required,email"`
	Nama        string `form:"nama" validate:"required"`
	Divisi      string `form:"divisi" validate:"required"`
	Posisi      string `form:"posisi" validate:"required"`
	PhoneNumber string `form:"phoneNumber" validate:"required"`
	Role        string `form:"role"`
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// POST /api/semi-volunteer — registrasi gabungan: buat akun user + data
// anggota dalam satu transaksi, foto profil opsional via multipart.
func (h *SemiVolunteerHandler) Create(c echo.Context) error {
	var req semiVolunteerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}
	if err := validate.Struct(&req); err != nil {
		missing := []string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
		}
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message":       "Semua field harus diisi",
			"missingFields": missing,
		})
	}

	phone := onlyDigits(req.PhoneNumber)
	if phone == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Nomor telepon harus berupa angka"})
	}

	// resolve divisi & role dari nama
	var divisi models.Division
	if err := h.db.Where("nama = ?", req.Divisi).First(&divisi).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Divisi tidak ditemukan: " + req.Divisi})
	}
	roleName := req.Role
	if roleName == "" {
		roleName = policy.RoleSemiVolunteer
	}
	var role models.Role
	if err := h.db.Where("nama = ?", roleName).First(&role).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Role tidak ditemukan: " + roleName})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	var dup models.User
	if err := h.db.Where("email = ?", email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Email sudah digunakan"})
	}

	// foto ditulis ke disk sebelum transaksi DB; crash di antaranya
	// meninggalkan file yatim — diterima, tidak di-recover
	photoPath := storage.DefaultPhotoPath
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		p, err := h.store.SavePhoto(fh)
		if err != nil {
			if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) {
				return c.JSON(http.StatusBadRequest, map[string]any{"message": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal menyimpan foto"})
		}
		photoPath = p
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultSemiVolunteerPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal membuat semi volunteer"})
	}

	var user models.User
	var member models.Member
	err = h.db.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Email:    email,
			Password: string(hash),
			RoleID:   role.ID,
			DivisiID: &divisi.ID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		member = models.Member{
			Foto:     photoPath,
			Nama:     req.Nama,
			DivisiID: divisi.ID,
			Posisi:   req.Posisi,
			Kontak:   phone,
			Status:   models.MemberStatusActive,
			UserID:   &user.ID,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal membuat semi volunteer"})
	}

	resp := map[string]any{
		"message": "Semi volunteer berhasil dibuat",
		"data": map[string]any{
			"user": map[string]any{
				"id":        user.ID,
				"email":     user.Email,
				"role_id":   user.RoleID,
				"divisi_id": user.DivisiID,
			},
			"member": map[string]any{
				"id":        member.ID,
				"nama":      member.Nama,
				"divisi_id": member.DivisiID,
				"posisi":    member.Posisi,
				"foto":      member.Foto,
			},
		},
	}

	// email best-effort: gagal kirim tidak membatalkan data yang sudah
	// tersimpan, hanya jadi warning
	subject, body := mailer.BuildWelcomeEmail(mailer.WelcomeEmailData{
		Nama:     req.Nama,
		Email:    email,
		Password: defaultSemiVolunteerPassword,
	})
	if err := h.mailer.Send(email, subject, body); err != nil {
		resp["warning"] = "Registrasi berhasil, tetapi email gagal dikirim"
	}

	return c.JSON(http.StatusCreated, resp)
}
