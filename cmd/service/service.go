// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"os"

	"project-board/internal/cache"
	"project-board/internal/config"
	"project-board/internal/database"
	"project-board/internal/middleware"
	"project-board/internal/router"
	"project-board/internal/service"
	"project-board/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "project-board/docs" // swag-generated swagger document

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func newValidator() *CustomValidator {
	v := validator.New()
	// The cpf rule backs the validate:"cpf" tags on request structs.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return service.ValidCPF(service.NormalizeCPF(fl.Field().String()))
	})
	return &CustomValidator{validator: v}
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connect: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connect: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = newValidator()
	e.Debug = cfg.Debug
	e.HTTPErrorHandler = middleware.ErrorHandler(cfg.Debug)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, db, rdb, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+cfg.Port)
}
