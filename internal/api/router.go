package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/minifeed/docs"
	"github.com/rohits-web03/minifeed/internal/api/handlers"
	"github.com/rohits-web03/minifeed/internal/api/middleware"
	"github.com/rs/cors"
)

type RouterConfig struct {
	Cors               cors.Options
	LoginRatePerMinute int
	LoginBurst         int
	// TrustProxy keys the login limiter by X-Forwarded-For.
	TrustProxy bool
	// Registry collects the HTTP metrics and backs /metrics. Nil means a
	// fresh registry.
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

func SetupRouter(h *handlers.Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	mainMux := http.NewServeMux()
	c := cors.New(cfg.Cors)
	metrics := middleware.NewMetrics(reg)
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "minifeed_picsum_cached_images",
		Help: "Number of picsum images held in the proxy cache",
	}, func() float64 { return float64(h.CachedImages()) }))
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst, cfg.TrustProxy)
	protected := middleware.Auth(h.JWTSecret())

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mainMux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mainMux.HandleFunc("GET /docs/", httpSwagger.WrapHandler)

	mainMux.Handle("POST /login", loginLimiter.Middleware(http.HandlerFunc(h.Login)))
	mainMux.HandleFunc("POST /logout", h.Logout)

	mainMux.HandleFunc("GET /users", h.ListUsers)
	mainMux.HandleFunc("GET /users/minimal", h.ListUsersMinimal)
	mainMux.HandleFunc("GET /posts", h.ListPosts)
	mainMux.HandleFunc("GET /post/{id}", h.GetPost)
	mainMux.HandleFunc("GET /user/{username}", h.GetUser)
	mainMux.HandleFunc("GET /user/{username}/posts", h.GetUserPosts)

	mainMux.HandleFunc("GET /uploads/posts/{filename}", h.ServeUpload)
	mainMux.HandleFunc("GET /proxy/picsum/{id}/{width}/{height}", h.PicsumImage)

	// ---------- PROTECTED ROUTES ----------
	mainMux.Handle("POST /post", protected(http.HandlerFunc(h.CreatePost)))
	mainMux.Handle("PUT /post/{id}", protected(http.HandlerFunc(h.EditPost)))
	mainMux.Handle("DELETE /post/{id}", protected(http.HandlerFunc(h.DeletePost)))
	mainMux.Handle("POST /post/{id}/reply", protected(http.HandlerFunc(h.CreateReply)))
	mainMux.Handle("POST /post/{id}/image", protected(http.HandlerFunc(h.UploadImage)))
	mainMux.Handle("DELETE /post/{id}/image", protected(http.HandlerFunc(h.DeleteImage)))

	logger.Info("router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(logger)(handler)
	handler = metrics.Middleware(handler)
	return handler
}
