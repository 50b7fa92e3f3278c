package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
)

type AuthHandler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) signJWT(u models.User, role, divisi string) (string, error) {
	claims := jwt.MapClaims{
		"id":     u.ID,
		"email":  u.Email,
		"role":   role,
		"divisi": divisi,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
		"iat":    time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

// POST /api/users/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Payload tidak valid"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	var u models.User
	if err := h.db.Where("email = ?", email).First(&u).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Email atau password salah"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Email atau password salah"})
	}

	roleNama, divisiNama := h.lookupNames(u)

	token, err := h.signJWT(u, roleNama, divisiNama)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Gagal melakukan login"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login berhasil",
		"user": map[string]any{
			"id":     u.ID,
			"email":  u.Email,
			"role":   roleNama,
			"divisi": divisiNama,
		},
		"token": token,
	})
}

func (h *AuthHandler) lookupNames(u models.User) (role, divisi string) {
	var r models.Role
	if err := h.db.First(&r, u.RoleID).Error; err == nil {
		role = r.Nama
	}
	if u.DivisiID != nil {
		var d models.Division
		if err := h.db.First(&d, *u.DivisiID).Error; err == nil {
			divisi = d.Nama
		}
	}
	return role, divisi
}
