// Package rest exposes the carpool API over HTTP with gin. Handlers talk to
// the repository ports, so they work identically against plain or cached
// repositories; the cache layer stays invisible at this level.
package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wheelshare/carpool-api/internal/repository"
)

// Repositories bundles the ports the handlers need. Pass cached decorators
// from the DI container in production, plain repositories in tests.
type Repositories struct {
	Brands       repository.BrandRepository
	Cars         repository.CarRepository
	Cities       repository.CityRepository
	Travels      repository.TravelRepository
	Inscriptions repository.InscriptionRepository
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(log *zap.Logger, repos Repositories) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	b := brandHandler{repo: repos.Brands}
	v1.GET("/brands", b.list)
	v1.GET("/brands/:id", b.get)
	v1.GET("/brands/:id/models", b.models)

	ct := cityHandler{repo: repos.Cities}
	v1.GET("/cities", ct.list)
	v1.GET("/cities/:id", ct.get)

	ca := carHandler{repo: repos.Cars}
	v1.GET("/cars/:id", ca.get)

	tr := travelHandler{repo: repos.Travels}
	v1.GET("/travels", tr.search)
	v1.GET("/travels/:id", tr.get)
	v1.POST("/travels", tr.create)
	v1.PUT("/travels/:id", tr.update)
	v1.DELETE("/travels/:id", tr.remove)

	in := inscriptionHandler{repo: repos.Inscriptions, travels: repos.Travels}
	v1.GET("/travels/:id/inscriptions", in.listByTravel)
	v1.POST("/travels/:id/inscriptions", in.create)
	v1.PATCH("/inscriptions/:id", in.updateStatus)
	v1.DELETE("/inscriptions/:id", in.remove)

	return r
}

// requestLogger emits one structured line per request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
