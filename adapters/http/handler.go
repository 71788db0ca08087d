package http

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/buyer-hash/domain"
	"github.com/satriahrh/buyer-hash/usecase"
	"github.com/satriahrh/buyer-hash/utils/log"
)

const (
	// MaxRequestSize bounds the JSON body of a hash request.
	MaxRequestSize = "64KB"

	jwtIssuer  = "buyer-hash"
	jwtSubject = "buyer-hash-api"

	clientIDContextKey = "client_id"
)

type Options struct {
	JWTSecret     string
	JWTExpiry     time.Duration
	APIKey        string
	APISecret     string
	MaxConcurrent int
}

type HashHandler struct {
	hashService   *usecase.BuyerHashService
	jwtSecret     []byte
	jwtExpiry     time.Duration
	apiKey        string
	apiSecret     string
	maxConcurrent int
}

type HashRequest struct {
	Value *string `json:"value"`
}

type HashResponse struct {
	Purpose domain.Purpose `json:"purpose"`
	Digest  string         `json:"digest"`
}

type JWTClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

func NewHashHandler(hashService *usecase.BuyerHashService, opts Options) *HashHandler {
	return &HashHandler{
		hashService:   hashService,
		jwtSecret:     []byte(opts.JWTSecret),
		jwtExpiry:     opts.JWTExpiry,
		apiKey:        opts.APIKey,
		apiSecret:     opts.APISecret,
		maxConcurrent: opts.MaxConcurrent,
	}
}

// GenerateJWT issues a bearer token to clients presenting the configured API credentials.
func (h *HashHandler) GenerateJWT(c echo.Context) error {
	if h.apiKey == "" || h.apiSecret == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Token issuance is not configured")
	}

	key := c.Request().Header.Get("X-API-Key")
	secret := c.Request().Header.Get("X-API-Secret")
	if !constantTimeEqual(key, h.apiKey) || !constantTimeEqual(secret, h.apiSecret) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	claims := &JWTClaims{
		ClientID: key,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
			Subject:   jwtSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		log.WithCtx(requestContext(c)).Error("❌ Failed to sign JWT", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token": tokenString,
		"type":  "Bearer",
	})
}

// JWTMiddleware rejects requests without a valid bearer token.
func (h *HashHandler) JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return h.jwtSecret, nil
		}, jwt.WithIssuer(jwtIssuer))
		if err != nil {
			log.WithCtx(requestContext(c)).Warn("🚫 JWT validation failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}

		if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
			c.Set(clientIDContextKey, claims.ClientID)
			return next(c)
		}

		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token claims")
	}
}

// RateLimitMiddleware caps the number of hash requests in flight.
func (h *HashHandler) RateLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	limit := h.maxConcurrent
	if limit <= 0 {
		limit = 1
	}
	semaphore := make(chan struct{}, limit)
	return func(c echo.Context) error {
		select {
		case semaphore <- struct{}{}:
			defer func() { <-semaphore }()
			return next(c)
		default:
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many concurrent requests")
		}
	}
}

func (h *HashHandler) HashPhoneNumber(c echo.Context) error {
	return h.hash(c, domain.PhoneNumberPurpose)
}

func (h *HashHandler) HashAddress(c echo.Context) error {
	return h.hash(c, domain.AddressPurpose)
}

func (h *HashHandler) hash(c echo.Context, purpose domain.Purpose) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if offset := invalidTextOffset(raw); offset >= 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("%s: %s at body byte %d", purpose, domain.ErrInvalidEncoding, offset))
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(raw))

	var req HashRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Value == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing value")
	}

	ctx := requestContext(c)
	digest, err := h.hashService.Digest(purpose, *req.Value)
	if err != nil {
		var encErr *domain.EncodingError
		switch {
		case errors.As(err, &encErr):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, encErr.Error())
		case errors.Is(err, domain.ErrDigestLength):
			log.WithCtx(ctx).Error("❌ Hashing backend misconfigured", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute digest")
		default:
			log.WithCtx(ctx).Error("❌ Failed to compute digest", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute digest")
		}
	}

	log.WithCtx(ctx).Info("✅ Digest served", zap.String("purpose", string(purpose)))
	return c.JSON(http.StatusOK, HashResponse{
		Purpose: purpose,
		Digest:  digest.Hex(),
	})
}

// Health check endpoint
func (h *HashHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "buyer-hash",
		"backend":   h.hashService.Backend(),
	})
}

// RequestIDMiddleware tags each request with an identifier for log correlation.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(echo.HeaderXRequestID)
		if id == "" {
			var err error
			if id, err = generateRequestID(); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create request")
			}
		}
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		ctx := context.WithValue(c.Request().Context(), log.RequestIDKey, id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// requestContext returns the request context carrying the authenticated client, if any.
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if id, ok := c.Get(clientIDContextKey).(string); ok {
		ctx = context.WithValue(ctx, log.ClientIDKey, id)
	}
	return ctx
}

func generateRequestID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", bytes), nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
