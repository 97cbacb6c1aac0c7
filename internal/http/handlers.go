package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"footscan-chat/internal/core"
)

// chatPaths are the routes of the chat endpoint.
var chatPaths = []string{"/functions/v1/antopic_chat", "/api/chat"}

// maxBodyBytes caps the chat request body.  Anything larger is treated as
// an unparsable body.
const maxBodyBytes = 1 << 20

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to an http.Server.
type Server struct {
	// DB is optional; when nil readiness does not depend on a database.
	DB     Pinger
	Logger *zap.Logger
	// ChunkDelay is the pause after each streamed delta.
	ChunkDelay time.Duration

	router chi.Router
}

// NewServer constructs a Server and its routes.  db may be nil.
func NewServer(db Pinger, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		DB:         db,
		Logger:     logger,
		ChunkDelay: core.ChunkDelay,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests(logger))
	r.Use(middleware.Recoverer)

	// The chat endpoint takes every method so that it answers unsupported
	// ones itself, with CORS headers.  chi sends methods outside its method
	// table straight to the 405 handler, so that handler forwards chat paths
	// back to handleChat.
	for _, path := range chatPaths {
		r.HandleFunc(path, s.handleChat)
	}
	r.MethodNotAllowed(s.handleMethodNotAllowed)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	s.router = r
	return s
}

// ServeHTTP dispatches to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleMethodNotAllowed lets the chat endpoint answer every method itself;
// other routes get a bare 405.
func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if slices.Contains(chatPaths, r.URL.Path) {
		s.handleChat(w, r)
		return
	}
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleChat reads the body of a POST and writes whatever Respond decides.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Method == http.MethodPost {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			s.Logger.Debug("failed to read chat body", zap.Error(err))
			s.write(w, r, invalidBody)
			return
		}
		body = data
	}
	s.write(w, r, Respond(r.Method, body))
}

// write binds a Response to the wire.
func (s *Server) write(w http.ResponseWriter, r *http.Request, resp Response) {
	switch resp := resp.(type) {
	case Empty:
		setHeaders(w, corsHeaders)
		w.WriteHeader(http.StatusOK)
	case JSON:
		s.writeJSON(w, resp.Status, resp.Body, corsHeaders)
	case EventStream:
		setHeaders(w, corsHeaders, streamHeaders)
		w.WriteHeader(http.StatusOK)
		err := streamDeltas(r.Context(), newEventWriter(w), resp.Deltas, s.ChunkDelay)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.Logger.Debug("chat stream aborted by client",
				zap.String("request_id", middleware.GetReqID(r.Context())))
		default:
			s.Logger.Warn("chat stream write failed", zap.Error(err))
		}
	}
}

// writeJSON serialises body with the JSON content type layered under extra.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any, extra ...map[string]string) {
	data, err := marshalJSON(body)
	if err != nil {
		s.Logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	setHeaders(w, append([]map[string]string{jsonHeaders}, extra...)...)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.Logger.Debug("failed to write response", zap.Error(err))
	}
}

// handleHealth reports that the process is serving.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady additionally checks the database when one is configured.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.DB.Ping(ctx); err != nil {
			s.Logger.Warn("readiness check failed", zap.Error(err))
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
