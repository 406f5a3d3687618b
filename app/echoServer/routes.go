package echoServer

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajmin/level2-assingment3/app/echoServer/controller/book"
	"github.com/tajmin/level2-assingment3/app/echoServer/controller/borrow"
)

type C struct {
	Book   *book.Controller
	Borrow *borrow.Controller
}

func Register(e *echo.Echo, c C) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Library")
	})

	// Books
	b := e.Group("/books")
	b.POST("", c.Book.Create)
	b.GET("", c.Book.List)
	b.GET("/:id", c.Book.Detail)
	b.PUT("/:id", c.Book.Update)
	b.DELETE("/:id", c.Book.Delete)

	// Borrow
	e.POST("/borrow", c.Borrow.Create)
	e.GET("/borrow", c.Borrow.Summary)
}
