package main

import (
	"barbershop/cmd/internal/config"
	"barbershop/cmd/internal/domain/sqlite"
	"barbershop/cmd/internal/domain/sqlite/repository"
	"barbershop/cmd/internal/routes"
	"barbershop/cmd/internal/service"
	"barbershop/cmd/internal/utils"
	"barbershop/cmd/internal/utils/validators"
	"fmt"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	// `api token` prints an admin token for the configured secret and exits.
	if len(os.Args) > 1 && os.Args[1] == "token" {
		token, err := utils.SignAdminToken(cfg.AdminTokenSecret, 30*24*time.Hour)
		if err != nil {
			log.Fatal("failed to sign admin token", err)
		}
		fmt.Println(token)
		return
	}

	validate := validators.New()

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	kvRepo := repository.NewKeyValueRepository(db)
	store := service.NewStore(kvRepo, validate)

	// Normalize and migrate whatever an earlier version left behind.
	if _, apierr := store.Ensure(); apierr != nil {
		log.Fatal("failed to prepare the stored document", apierr)
	}

	if cfg.AdminTokenSecret == "" {
		log.Warn("ADMIN_TOKEN_SECRET is empty, admin routes will reject every request")
	}

	scheduleRoutes := routes.NewScheduleDefault(store)
	reportRoutes := routes.NewReportDefault(store, cfg.BusinessName)
	feedRoutes := routes.NewFeedDefault(store)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("64M"))

	routes.Register(e, scheduleRoutes, reportRoutes, feedRoutes, cfg.AdminTokenSecret)

	err = e.Start(cfg.ListenAddr)
	if err != nil {
		e.Logger.Fatal(err)
	}
}
