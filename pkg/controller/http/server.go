package http

import (
	"net/http"
	"time"

	"github.com/flowreach/flowreach/pkg/usecase"
	"github.com/flowreach/flowreach/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router          *chi.Mux
	uc              *usecase.UseCases
	metaVerifyToken string
	slackSigning    string
	slackEnabled    bool
}

type Options func(*Server)

// WithMetaWebhook enables the Meta webhook endpoints with the given
// challenge verify token
func WithMetaWebhook(verifyToken string) Options {
	return func(s *Server) {
		s.metaVerifyToken = verifyToken
	}
}

// WithSlackWebhook enables the Slack Events API endpoint with the
// given signing secret
func WithSlackWebhook(signingSecret string) Options {
	return func(s *Server) {
		s.slackSigning = signingSecret
		s.slackEnabled = true
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/ai/reply", replyHandler(uc))
		r.Get("/ai/config", getAIConfigHandler(uc))
		r.Post("/ai/config", updateAIConfigHandler(uc))

		r.Get("/onboarding", getProfileHandler(uc))
		r.Post("/onboarding", updateProfileHandler(uc))
		r.Get("/profile", getProfileHandler(uc))

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", listCampaignsHandler(uc))
			r.Post("/", createCampaignHandler(uc))
			r.Get("/{id}", getCampaignHandler(uc))
			r.Put("/{id}", updateCampaignHandler(uc))
			r.Delete("/{id}", deleteCampaignHandler(uc))
			r.Post("/{id}/start", startCampaignHandler(uc))
			r.Post("/{id}/stop", stopCampaignHandler(uc))
		})

		r.Route("/mother-ai", func(r chi.Router) {
			r.Get("/", listMotherAIHandler(uc))
			r.Post("/", createMotherAIHandler(uc))
			r.Post("/activate/{id}", activateMotherAIHandler(uc))
			r.Delete("/{id}", deleteMotherAIHandler(uc))
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", listConversationsHandler(uc))
			r.Get("/{id}/messages", listMessagesHandler(uc))
			r.Post("/{id}/messages", sendMessageHandler(uc))
			r.Post("/{id}/ai-mode", setAIModeHandler(uc))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", listSalesHandler(uc))
			r.Post("/", createSalesHandler(uc))
			r.Get("/summary", salesSummaryHandler(uc))
			r.Put("/{id}", updateSalesHandler(uc))
			r.Delete("/{id}", deleteSalesHandler(uc))
		})

		r.Get("/analytics", analyticsHandler(uc))
	})

	// Platform webhooks use their own verification, no auth middleware
	if s.metaVerifyToken != "" {
		r.Get("/hooks/meta", metaChallengeHandler(s.metaVerifyToken))
		r.Post("/hooks/meta", metaWebhookHandler(uc))
	}

	if s.slackEnabled {
		r.Route("/hooks/slack", func(r chi.Router) {
			r.Use(SlackSignatureMiddleware(s.slackSigning))
			r.Post("/event", slackWebhookHandler(uc))
		})
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
