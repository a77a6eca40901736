package wire

import (
	"zoo-admin/internal/adaptor"
	"zoo-admin/pkg/middleware"
	"zoo-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, config *utils.Config, log *zap.Logger) {
	limiter := middleware.NewRateLimiter(config.Auth.RateLimit)

	r.Route("/api/auth", func(r chi.Router) {
		// credential endpoints are throttled per client IP
		r.Use(limiter.Limit(log))

		r.Post("/register", authHandler.Register) // POST /api/auth/register
		r.Post("/login", authHandler.Login)       // POST /api/auth/login
	})
}
