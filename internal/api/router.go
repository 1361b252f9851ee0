package api

import (
	"net/http"
	"time"

	"pizzachat-backend/internal/handlers"
	"pizzachat-backend/internal/models"
	"pizzachat-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDependencies holds the handlers required by the router setup.
type RouterDependencies struct {
	ChatHandler *handlers.ChatHandlers
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// --- CORS Configuration ---
	// The chat widget is embedded wherever the shop page is served from,
	// so the API stays origin-permissive like the original deployment.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// JSON bodies for router-level misses, matching the widget's shape.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httputil.RespondJSON(w, http.StatusMethodNotAllowed, models.ClientErrorResponse{Message: "POSTメソッドのみ許可されています。"})
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httputil.RespondJSON(w, http.StatusNotFound, models.ClientErrorResponse{Message: "Not found"})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if deps.ChatHandler == nil {
		panic("ChatHandler dependency is nil in router setup")
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", deps.ChatHandler.HandleChat)
		r.Get("/conversations", deps.ChatHandler.HandleListConversations)
		r.Get("/conversations/{conversationID}", deps.ChatHandler.HandleGetConversation)
	})

	return r
}
