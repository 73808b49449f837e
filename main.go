// Package main library API.
//
// @title           Library Management API
// @version         1.0
// @description     library service (authors, books, categories, users, loans).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer"
	authorctrl "github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/author"
	bookctrl "github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/book"
	categoryctrl "github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/category"
	loanctrl "github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/loan"
	userctrl "github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/user"
	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/validation"
	"github.com/carolinaIbarra2/gestionBiblioteca/config"
	authorrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/author"
	bookrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/book"
	categoryrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/category"
	loanrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/loan"
	userrepo "github.com/carolinaIbarra2/gestionBiblioteca/repository/user"
	authorsvc "github.com/carolinaIbarra2/gestionBiblioteca/service/author"
	booksvc "github.com/carolinaIbarra2/gestionBiblioteca/service/book"
	categorysvc "github.com/carolinaIbarra2/gestionBiblioteca/service/category"
	loansvc "github.com/carolinaIbarra2/gestionBiblioteca/service/loan"
	usersvc "github.com/carolinaIbarra2/gestionBiblioteca/service/user"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/database"
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
	ar := authorrepo.New(db)
	br := bookrepo.New(db)
	cr := categoryrepo.New(db)
	ur := userrepo.New(db)
	lr := loanrepo.New(db)

	// services
	v := validator.New()
	as := authorsvc.New(ar)
	bs := booksvc.New(br, ar, cr)
	cs := categorysvc.New(cr)
	us := usersvc.New(ur, v)
	ls := loansvc.New(lr, ur, br)

	// controllers
	authorC := &authorctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	categoryC := &categoryctrl.Controller{Svc: cs, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e, log)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Author:   authorC,
		Book:     bookC,
		Category: categoryC,
		User:     userC,
		Loan:     loanC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
