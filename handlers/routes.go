package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"ai_tool_directory/config"
	_ "ai_tool_directory/docs" // 导入 swagger 文档
	"ai_tool_directory/models"
	"ai_tool_directory/utils"
)

// NewRouter 创建带中间件和全部路由的 chi 路由器
func NewRouter(cfg *config.Config, h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(cfg))

	RegisterRoutes(r, cfg, h)
	return r
}

// RegisterRoutes 注册路由；/api 下的接口按 IP 限流
func RegisterRoutes(r chi.Router, cfg *config.Config, h *Handler) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimitMiddleware(cfg))

		r.Get("/recommendation/{userId}", h.GetUserRecommendationHandler)
		r.Post("/recommendation/generate/{userId}", h.GenerateUserRecommendationHandler)
		r.Post("/recommendation/generate", h.GenerateAllRecommendationsHandler)

		r.Post("/behavior/{userId}", h.TrackBehaviorHandler)
		r.Post("/rating/{userId}", h.RateToolHandler)

		r.Get("/profile/{userId}", h.GetUserProfileHandler)
		r.Put("/profile/{userId}", h.UpsertUserProfileHandler)

		r.Get("/tools", h.ListToolsHandler)
		r.Get("/tools/{toolId}", h.GetToolHandler)
	})
}

func corsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.HTTP.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	})
}

// rateLimitMiddleware 每个 IP 每分钟 cfg.HTTP.RateLimit 次，0 表示不限流
func rateLimitMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.HTTP.RateLimit <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.HTTP.RateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			utils.WriteErrorResponse(w, models.CodeTooManyRequests, map[string]interface{}{})
		}),
	)
}
