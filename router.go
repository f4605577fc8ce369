package main

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"sheetCells/contracts"
	"time"
)

const CellsPath = "/cells"

func SetupRouter(controller contracts.ApiController, logger hclog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestLogger(logger))

	cellsRouterGroup := router.Group(CellsPath)
	cellsRouterGroup.GET("", controller.ListCellsAction)
	cellsRouterGroup.PUT("/:cell_id", controller.SetCellAction)
	cellsRouterGroup.GET("/:cell_id", controller.GetCellAction)
	cellsRouterGroup.DELETE("/:cell_id", controller.DeleteCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}

func NewRequestLogger(logger hclog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
