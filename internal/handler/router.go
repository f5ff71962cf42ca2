package handler

import (
	"net/http"

	"github.com/adagency/backend/internal/metrics"
	"github.com/adagency/backend/internal/repository"
	"github.com/adagency/backend/internal/service"
	"github.com/adagency/backend/pkg/auth"
)

// RouterConfig wires the services and settings the HTTP surface needs.
type RouterConfig struct {
	DB         repository.DB
	Contacts   service.ContactService
	Newsletter service.NewsletterService
	Bookings   service.BookingService

	// Metrics may be nil; /metrics is then not mounted.
	Metrics *metrics.Metrics

	// AdminToken guards the admin routes. Empty denies every admin request.
	AdminToken         string
	AllowedOrigins     []string
	RateLimitPerMinute int
	TrustProxyHeaders  bool
	// StaticDir, when set, serves the frontend build at /.
	StaticDir string
}

// NewRouter builds the full handler: routes plus the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New(cfg.DB)
	contactHandler := NewContactHandler(cfg.Contacts, cfg.Metrics)
	newsletterHandler := NewNewsletterHandler(cfg.Newsletter, cfg.Metrics)
	bookingHandler := NewBookingHandler(cfg.Bookings, cfg.Metrics)

	public := RateLimit(cfg.RateLimitPerMinute, cfg.TrustProxyHeaders)
	admin := auth.RequireBearerToken(cfg.AdminToken)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.Handle("POST /api/contact", public(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/newsletter", public(http.HandlerFunc(newsletterHandler.Subscribe)))
	mux.Handle("POST /api/book-call", public(http.HandlerFunc(bookingHandler.Book)))

	mux.Handle("GET /api/messages", admin(http.HandlerFunc(contactHandler.List)))
	mux.Handle("DELETE /api/messages/{id}", admin(http.HandlerFunc(contactHandler.Delete)))
	mux.Handle("GET /api/newsletter-subscribers", admin(http.HandlerFunc(newsletterHandler.List)))
	mux.Handle("GET /api/bookings", admin(http.HandlerFunc(bookingHandler.List)))

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}
	if cfg.StaticDir != "" {
		mux.Handle("GET /", Static(cfg.StaticDir))
	}

	// RequestLogger はパターン取得のため mux の直前に置く（r を差し替えない層のみ挟む）
	var handler http.Handler = mux
	handler = CORS(cfg.AllowedOrigins)(handler)
	handler = SecurityHeaders(handler)
	handler = RequestLogger(cfg.Metrics)(handler)
	handler = RequestID(handler)
	return handler
}
