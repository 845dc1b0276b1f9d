package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sixtyseconds/showcase/pkg/catalog"
	"github.com/sixtyseconds/showcase/pkg/email"
	"github.com/sixtyseconds/showcase/pkg/nav"
	"github.com/sixtyseconds/showcase/pkg/ratelimit"
	"github.com/sixtyseconds/showcase/pkg/requestid"
	"github.com/sixtyseconds/showcase/pkg/rotation"
)

// sendEmailLimit throttles the contact form per client IP.
var sendEmailLimit = ratelimit.Config{
	Capacity:       10,
	RefillRate:     1,
	RefillInterval: time.Minute,
}

// Server is the HTTP API for the showcase site: view resolution for the
// front end plus the contact-form email endpoint.
type Server struct {
	router     *chi.Mux
	catalog    *catalog.Catalog
	nav        *nav.Router
	dispatcher *email.Dispatcher
	rotor      *rotation.Rotor
	limiter    *ratelimit.Limiter
	log        *slog.Logger
}

// NewServer wires the API routes around the given catalog and dispatcher.
// rotor may be nil; the audiences endpoint then serves the static list only.
func NewServer(c *catalog.Catalog, d *email.Dispatcher, rotor *rotation.Rotor, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	limiter, err := ratelimit.New(sendEmailLimit)
	if err != nil {
		panic(err)
	}
	s := &Server{
		catalog:    c,
		nav:        nav.NewRouter(c),
		dispatcher: d,
		rotor:      rotor,
		limiter:    limiter,
		log:        log,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases background resources.
func (s *Server) Close() {
	s.limiter.Close()
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", requestid.Header},
		ExposedHeaders: []string{requestid.Header},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", s.handleView)
		r.Get("/audiences", s.handleAudiences)
		r.With(ratelimit.Middleware(s.limiter, ratelimit.ByClientIP)).HandleFunc("/send-email", s.handleSendEmail)
	})

	s.router = r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.log.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
