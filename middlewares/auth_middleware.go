package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims yang ditandatangani saat login (lihat handlers/auth_handler.go).
type Claims struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Divisi string `json:"divisi"`
	jwt.RegisteredClaims
}

// ambil token dari Authorization header
func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Akses ditolak, token tidak ditemukan"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Akses ditolak, token tidak ditemukan"})
	}
	return parts[1], nil
}

// RequireAuth memverifikasi JWT (HS256) dan menaruh claims di context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
				// tolak alg selain HMAC
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusForbidden, map[string]any{"message": "Token tidak valid atau kedaluwarsa"})
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"message": "Token tidak valid atau kedaluwarsa"})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"message": "Token tidak valid atau kedaluwarsa"})
			}
			// cek expiry eksplisit (jaga-jaga kalau parser dikonfigurasi longgar)
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"message": "Token tidak valid atau kedaluwarsa"})
			}
			c.Set("user_id", claims.ID)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)
			c.Set("divisi", claims.Divisi)
			return next(c)
		}
	}
}
