package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", rootHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &productHandler{svc: deps.ProductSvc, logger: logger}
	router.POST("/products", h.create)
	router.GET("/products", h.list)
	router.POST("/products/bulk-upload", h.bulkUpload)
	router.GET("/products/:id", h.get)
	router.PUT("/products/:id", h.update)
	router.DELETE("/products/:id", h.delete)
	router.GET("/categories", h.categories)

	return router
}
