package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer builds the echo instance with every route mounted.
func NewServer(h *HashHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Security middleware
	e.Use(RequestIDMiddleware)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	// Request size limit
	e.Use(middleware.BodyLimit(MaxRequestSize))

	api := e.Group("/api/v1")

	// Public endpoints (no auth required)
	api.GET("/health", h.HealthCheck)
	api.POST("/auth/token", h.GenerateJWT)

	// Hash endpoints (JWT auth required)
	hash := api.Group("/hash")
	hash.Use(h.JWTMiddleware)
	hash.Use(h.RateLimitMiddleware)

	hash.POST("/phone", h.HashPhoneNumber)
	hash.POST("/address", h.HashAddress)

	return e
}
