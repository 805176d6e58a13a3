package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/app/echoServer/controller/item"
	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/app/echoServer/controller/rental"
)

type C struct {
	Item   *item.Controller
	Rental *rental.Controller
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	// Catalog
	api.POST("/items", c.Item.Create)
	api.GET("/items", c.Item.List)
	api.GET("/items/:id", c.Item.Detail)
	api.GET("/items/:id/history", c.Rental.History)

	// Rentals
	api.POST("/rentals", c.Rental.Open)
	api.POST("/rentals/:id/return", c.Rental.Return)
}
