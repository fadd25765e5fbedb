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

	"github.com/grove-games/armory/internal/auth"
	"github.com/grove-games/armory/internal/character"
	"github.com/grove-games/armory/internal/database"
	"github.com/grove-games/armory/internal/economy"
	"github.com/grove-games/armory/internal/handler"
	"github.com/grove-games/armory/internal/item"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/metrics"
	"github.com/grove-games/armory/internal/user"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	userService      user.Service
	characterService character.Service
	itemService      item.Service
	economyService   economy.Service
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, authMW *auth.Middleware, dbPool database.Pool, userService user.Service, characterService character.Service, itemService item.Service, economyService economy.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Account routes (public)
		r.Route("/users", func(r chi.Router) {
			r.Post("/sign-up", handler.HandleSignUp(userService))
			r.Post("/sign-in", handler.HandleSignIn(userService))
		})

		// Character routes
		r.Route("/characters", func(r chi.Router) {
			r.With(authMW.Require).Post("/", handler.HandleCreateCharacter(characterService))

			r.Route("/{characterID}", func(r chi.Router) {
				// Owners see their balance, everyone else gets the public view
				r.With(authMW.Optional).Get("/", handler.HandleGetCharacter(characterService))
				r.With(authMW.Require).Delete("/", handler.HandleDeleteCharacter(characterService))
				r.Get("/inventory", handler.HandleListInventory(characterService))
				r.With(authMW.Require).Post("/work", handler.HandleWork(economyService))
			})
		})

		// Item catalog routes (public)
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handler.HandleCreateItem(itemService))
			r.Get("/", handler.HandleListItems(itemService))
			r.Get("/{itemCode}", handler.HandleGetItem(itemService))
		})

		// Shop routes (owner only)
		r.Route("/shop/{characterID}", func(r chi.Router) {
			r.Use(authMW.Require)
			r.Post("/purchase", handler.HandlePurchase(economyService))
			r.Post("/sell", handler.HandleSell(economyService))
		})

		// Equipment routes
		r.Route("/equipment/{characterID}", func(r chi.Router) {
			r.With(authMW.Require).Post("/", handler.HandleEquip(economyService))
			r.Get("/", handler.HandleListEquipment(characterService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		userService:      userService,
		characterService: characterService,
		itemService:      itemService,
		economyService:   economyService,
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
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
