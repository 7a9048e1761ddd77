package http

import (
	"github.com/gin-gonic/gin"
	"github.com/openex/ordergate/internal/adapter/config"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()

	api := router.Group("/api")
	{
		market := api.Group("/market")
		{
			orders := market.Group("/orders")
			{
				orders.POST("", orderHandler.CreateOrder)
				orders.POST("/:id/cancel", orderHandler.CancelOrder)
				orders.POST("/cancel", orderHandler.BulkCancel)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
