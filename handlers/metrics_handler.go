package handlers

import (
	"strconv"

	"recipebox/models"

	"github.com/gofiber/adaptor/v2"
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	totalRecipes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "recipebox_total_recipes",
		Help: "Total number of recipes",
	})

	totalFolders = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "recipebox_total_folders",
		Help: "Total number of folders",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recipebox_http_requests_total",
		Help: "Total number of HTTP requests by method and status",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(totalRecipes)
	prometheus.MustRegister(totalFolders)
	prometheus.MustRegister(httpRequests)
}

// updateMetrics refreshes the entity gauges from the database
func updateMetrics() {
	if count, err := models.CountRecipes(); err == nil {
		totalRecipes.Set(float64(count))
	} else {
		log.Warnf("Failed to count recipes for metrics: %v", err)
	}

	if count, err := models.CountFolders(); err == nil {
		totalFolders.Set(float64(count))
	} else {
		log.Warnf("Failed to count folders for metrics: %v", err)
	}
}

// MetricsMiddleware counts every handled request
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		httpRequests.WithLabelValues(c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

// HandleMetrics serves the Prometheus metrics endpoint
func HandleMetrics(c *fiber.Ctx) error {
	updateMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())(c)
}
