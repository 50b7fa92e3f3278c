package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/NxM90/GSJS-Backends/policy"
	"github.com/NxM90/GSJS-Backends/services"
)

var validate = validator.New()

// parse string -> uint; 0 kalau gagal
func parseUint(s string) uint {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

func idParam(c echo.Context) uint { return parseUint(c.Param("id")) }

// actorFrom membaca identitas dari claims yang ditaruh middleware auth.
func actorFrom(c echo.Context) policy.Actor {
	id, _ := c.Get("user_id").(uint)
	role, _ := c.Get("role").(string)
	return policy.Actor{ID: id, Role: role}
}

// serviceError memetakan error service ke respons HTTP sesuai taksonomi.
// Hanya kelas internal yang pesannya disembunyikan dari caller.
func serviceError(c echo.Context, err error) error {
	switch services.Classify(err) {
	case services.KindNotFound:
		return c.JSON(http.StatusNotFound, map[string]any{"message": err.Error()})
	case services.KindValidation:
		return c.JSON(http.StatusBadRequest, map[string]any{"message": err.Error()})
	case services.KindConflict:
		return c.JSON(http.StatusConflict, map[string]any{"message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Terjadi kesalahan pada server"})
	}
}

func forbidden(c echo.Context, err error) error {
	return c.JSON(http.StatusForbidden, map[string]any{"message": err.Error()})
}
