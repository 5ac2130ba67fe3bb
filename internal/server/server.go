package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mossvale/farmstead/internal/animal"
	"github.com/mossvale/farmstead/internal/crop"
	"github.com/mossvale/farmstead/internal/database"
	"github.com/mossvale/farmstead/internal/economy"
	"github.com/mossvale/farmstead/internal/farm"
	"github.com/mossvale/farmstead/internal/handler"
	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/metrics"
	"github.com/mossvale/farmstead/internal/player"
	"github.com/mossvale/farmstead/internal/world"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	playerService  player.Service
	farmService    farm.Service
	cropService    crop.Service
	animalService  animal.Service
	worldService   world.Service
	economyService economy.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, playerService player.Service, farmService farm.Service, cropService crop.Service, animalService animal.Service, worldService world.Service, economyService economy.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	playerHandler := handler.NewPlayerHandler(playerService)
	farmHandler := handler.NewFarmHandler(farmService)
	cropHandler := handler.NewCropHandler(cropService)
	animalHandler := handler.NewAnimalHandler(animalService)
	worldHandler := handler.NewWorldHandler(worldService)
	marketHandler := handler.NewMarketHandler(economyService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/player", func(r chi.Router) {
			r.Post("/", playerHandler.CreatePlayer)
			r.Get("/", playerHandler.GetPlayer)
			r.Delete("/", playerHandler.DeletePlayer)
			r.Get("/inventory", playerHandler.GetInventory)
			r.Get("/tools", playerHandler.GetTools)
			r.Post("/eat", playerHandler.EatFood)
		})

		r.Route("/farm", func(r chi.Router) {
			r.Get("/", farmHandler.GetFarm)
			r.Post("/till", farmHandler.Till)
		})

		r.Route("/crops", func(r chi.Router) {
			r.Get("/", cropHandler.GetCrops)
			r.Post("/plant", cropHandler.Plant)
			r.Post("/water", cropHandler.Water)
			r.Post("/harvest", cropHandler.Harvest)
		})

		r.Route("/animals", func(r chi.Router) {
			r.Get("/", animalHandler.GetAnimals)
			r.Post("/feed", animalHandler.Feed)
			r.Post("/collect", animalHandler.Collect)
			r.Post("/move", animalHandler.Move)
		})

		r.Route("/world", func(r chi.Router) {
			r.Post("/advance", worldHandler.Advance)
			r.Post("/end-day", worldHandler.EndDay)
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/prices", marketHandler.Prices)
			r.Post("/buy", marketHandler.Buy)
			r.Post("/sell", marketHandler.Sell)
			r.Post("/upgrade-tool", marketHandler.UpgradeTool)
			r.Get("/sales", marketHandler.SalesHistory)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		playerService:  playerService,
		farmService:    farmService,
		cropService:    cropService,
		animalService:  animalService,
		worldService:   worldService,
		economyService: economyService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, "X-API-Key") || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{"[REDACTED]"}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
