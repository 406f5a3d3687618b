// Package main library catalog API.
//
// @title           Library Catalog API
// @version         1.0
// @description     book catalog with borrow transactions and availability tracking.
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/tajmin/level2-assingment3/app/echoServer"
	bookctrl "github.com/tajmin/level2-assingment3/app/echoServer/controller/book"
	borrowctrl "github.com/tajmin/level2-assingment3/app/echoServer/controller/borrow"
	"github.com/tajmin/level2-assingment3/app/echoServer/validation"
	"github.com/tajmin/level2-assingment3/config"
	bookrepo "github.com/tajmin/level2-assingment3/repository/book"
	borrowrepo "github.com/tajmin/level2-assingment3/repository/borrow"
	booksvc "github.com/tajmin/level2-assingment3/service/book"
	borrowsvc "github.com/tajmin/level2-assingment3/service/borrow"
	"github.com/tajmin/level2-assingment3/util/database"
	"github.com/tajmin/level2-assingment3/util/httpx"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bookrepo.New(db)
	wr := borrowrepo.New(db)

	// services
	bs := booksvc.New(br)
	ws := borrowsvc.New(db, wr, br)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	borrowC := &borrowctrl.Controller{Svc: ws, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()
	e.HTTPErrorHandler = echoServer.ErrorHandler(log)

	e.GET("/health", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return httpx.Fail(c, http.StatusServiceUnavailable, "database unreachable", nil)
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Book:   bookC,
		Borrow: borrowC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
