package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/author"
	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/book"
	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/category"
	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/loan"
	"github.com/carolinaIbarra2/gestionBiblioteca/app/echoServer/controller/user"
)

type C struct {
	Author   *author.Controller
	Book     *book.Controller
	Category *category.Controller
	User     *user.Controller
	Loan     *loan.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Authors
	v1.POST("/authors", c.Author.Create)
	v1.PUT("/authors/:id", c.Author.Update)
	v1.GET("/authors", c.Author.List)
	v1.GET("/authors/books", c.Author.ListWithBooks)
	v1.DELETE("/authors/:id", c.Author.Delete)

	// Books (no delete: books are never removed through the API)
	v1.POST("/books", c.Book.Create)
	v1.PUT("/books/:id", c.Book.Update)
	v1.GET("/books", c.Book.List)
	v1.GET("/books/loans", c.Book.ListWithLoans)
	v1.GET("/books/:id", c.Book.Detail)

	// Categories
	v1.POST("/categories", c.Category.Create)
	v1.PUT("/categories/:id", c.Category.Update)
	v1.GET("/categories", c.Category.List)
	v1.DELETE("/categories/:id", c.Category.Delete)

	// Users
	v1.POST("/users", c.User.Create)
	v1.PUT("/users/:id", c.User.Update)
	v1.GET("/users", c.User.List)
	v1.GET("/users/:id", c.User.Detail)
	v1.DELETE("/users/:id", c.User.Delete)

	// Loans
	v1.POST("/loans", c.Loan.Create)
	v1.PUT("/loans/:id", c.Loan.Update)
	v1.GET("/loans", c.Loan.List)
	v1.DELETE("/loans/:id", c.Loan.Delete)
}
