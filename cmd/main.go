package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/NxM90/GSJS-Backends/config"
	"github.com/NxM90/GSJS-Backends/database"
	"github.com/NxM90/GSJS-Backends/mailer"
	"github.com/NxM90/GSJS-Backends/routes"
	"github.com/NxM90/GSJS-Backends/storage"
)

func main() {
	cfg := config.Load()

	// koneksi DB gagal = langsung berhenti, lebih baik fail cepat saat start
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, routes.Deps{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		Storage:   store,
		Mailer:    mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom),
	})

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
