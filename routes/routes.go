package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/handlers"
	"github.com/NxM90/GSJS-Backends/mailer"
	"github.com/NxM90/GSJS-Backends/middlewares"
	"github.com/NxM90/GSJS-Backends/repository"
	"github.com/NxM90/GSJS-Backends/services"
	"github.com/NxM90/GSJS-Backends/storage"
)

// Deps menampung dependensi runtime yang dibutuhkan routes.
type Deps struct {
	DB        *gorm.DB
	JWTSecret string
	Storage   *storage.Storage
	Mailer    mailer.Mailer
}

// Register wires all HTTP routes.
func Register(e *echo.Echo, deps Deps) {
	// ===== Handlers (shared singletons) =====
	scheduleSvc := services.NewScheduleService(repository.NewScheduleStore(deps.DB))
	attendanceSvc := services.NewAttendanceService(repository.NewAttendanceStore(deps.DB))
	memberStore := repository.NewMemberStore(deps.DB)

	auth := handlers.NewAuthHandler(deps.DB, deps.JWTSecret)
	usr := handlers.NewUserHandler(deps.DB)
	div := handlers.NewDivisionHandler(deps.DB)
	rl := handlers.NewRoleHandler(deps.DB)
	mbr := handlers.NewMemberHandler(deps.DB, memberStore)
	jdw := handlers.NewScheduleHandler(scheduleSvc)
	jam := handlers.NewWorshipTimeHandler(deps.DB)
	abs := handlers.NewAttendanceHandler(attendanceSvc)
	sv := handlers.NewSemiVolunteerHandler(deps.DB, deps.Storage, deps.Mailer)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/api/users/login", auth.Login)

	// file statis: foto profil upload & aset default
	e.Static("/uploads", deps.Storage.Dir())
	e.Static("/images", "images")

	// ===== Protected =====
	authMW := middlewares.RequireAuth(deps.JWTSecret)
	api := e.Group("/api", authMW)

	users := api.Group("/users")
	users.GET("", usr.List)
	users.GET("/:id", usr.Get)
	users.POST("", usr.Create)
	users.PUT("/:id", usr.Update)
	users.DELETE("/:id", usr.Delete)

	divisi := api.Group("/divisi")
	divisi.GET("", div.List)
	divisi.GET("/:id", div.Get)
	divisi.POST("", div.Create)
	divisi.PUT("/:id", div.Update)
	divisi.DELETE("/:id", div.Delete)

	role := api.Group("/role")
	role.GET("", rl.List)
	role.GET("/:id", rl.Get)
	role.POST("", rl.Create)
	role.PUT("/:id", rl.Update)
	role.DELETE("/:id", rl.Delete)

	members := api.Group("/members")
	members.GET("", mbr.List)
	members.GET("/:id", mbr.Get)
	members.POST("", mbr.Create)
	members.PUT("/:id", mbr.Update)
	members.DELETE("/:id", mbr.Delete)
	members.PATCH("/:id/status", mbr.UpdateStatus)

	jadwal := api.Group("/jadwal")
	jadwal.GET("", jdw.List)
	jadwal.GET("/:id", jdw.Get)
	jadwal.POST("", jdw.Create)
	jadwal.PUT("/:id", jdw.Update)
	jadwal.PUT("/:id/jam-ibadah", jdw.SetWorshipTimes)
	jadwal.DELETE("/:id", jdw.Delete)

	jamIbadah := api.Group("/jam-ibadah")
	jamIbadah.GET("", jam.List)
	jamIbadah.GET("/:id", jam.Get)
	jamIbadah.POST("", jam.Create)
	jamIbadah.PUT("/:id", jam.Update)
	jamIbadah.DELETE("/:id", jam.Delete)

	absensi := api.Group("/absensi")
	absensi.GET("", abs.List)
	absensi.GET("/:id", abs.Get)
	absensi.POST("", abs.Create)
	absensi.POST("/bulk", abs.Bulk)
	absensi.PUT("/:id", abs.Update)
	absensi.DELETE("/:id", abs.Delete)

	// registrasi semi volunteer: akun user + data anggota sekaligus
	api.POST("/semi-volunteer", sv.Create)

	// tampilan gabungan member + akun user terkait
	um := api.Group("/users-members")
	um.GET("", mbr.ListWithUsers)
	um.GET("/:id", mbr.GetWithUser)
	um.DELETE("/:id", mbr.DeleteWithUser)
}
