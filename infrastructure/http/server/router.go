package server

import (
	"chat-core/auth"
	"chat-core/contract"
	"chat-core/observability"
	"chat-core/projection"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type healthResponse struct {
	Status  string `json:"status"`
	Clients int    `json:"clients"`
}

// Debug holds the optional inspection sources. A nil field disables its
// route.
type Debug struct {
	Timeline   *projection.Timeline
	Monitoring *observability.MonitoringManager
}

// NewRouter builds the HTTP router. Everything except health and metrics
// requires a bearer token.
func NewRouter(h *Handlers, ws *WebSocketHandler, tokens *auth.Tokens, registry contract.IRegistry, debug Debug, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Clients: registry.Count()})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))

		// The websocket outlives any request timeout.
		r.Handle("/ws", ws)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			r.Get("/account", h.GetAccount)
			r.Put("/account/pins/{conversationID}", h.Pin)
			r.Delete("/account/pins/{conversationID}", h.Unpin)
			r.Put("/account/blocks/{connectionID}", h.Block)
			r.Delete("/account/blocks/{connectionID}", h.Unblock)

			r.Post("/connections", h.CreateConnection)
			r.Put("/connections/{connectionID}/status", h.SetConnectionStatus)
			r.Post("/connections/{connectionID}/conversation", h.CreateConnectionConversation)

			r.Post("/groups", h.CreateGroup)
			r.Post("/groups/{groupID}/members", h.AddGroupMember)
			r.Delete("/groups/{groupID}/members/{accountID}", h.RemoveGroupMember)
			r.Post("/groups/{groupID}/conversation", h.CreateGroupConversation)

			r.Get("/conversations", h.ListConversations)
			r.Route("/conversations/{conversationID}", func(r chi.Router) {
				r.Get("/", h.GetConversation)
				r.Post("/messages", h.SendMessage)
				r.Patch("/messages/{messageID}", h.EditText)
				r.Delete("/messages/{messageID}", h.DeleteMessage)
				r.Post("/messages/{messageID}/images", h.AppendImage)
				r.Post("/messages/{messageID}/content-items", h.AppendContentItem)
				r.Post("/messages/{messageID}/read", h.MarkAsRead)
			})

			r.Post("/content/{contentItemID}/deleted", h.ContentDeleted)

			if debug.Timeline != nil {
				r.Get("/debug/timeline", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, http.StatusOK, debug.Timeline.Envelopes())
				})
			}
			if debug.Monitoring != nil {
				r.Get("/debug/stats", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, http.StatusOK, debug.Monitoring.GetLatest())
				})
			}
		})
	})
	return r
}
