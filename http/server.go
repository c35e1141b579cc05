package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/siterag"
)

// DefaultAddr is the default listen address of the API server.
const DefaultAddr = ":8000"

// StatusMessage is the body returned by the root health endpoint.
const StatusMessage = "Server is running !!!"

// Server exposes question answering over HTTP.
type Server struct {
	server *http.Server

	mu sync.Mutex
	ln net.Listener

	// Addr is the bind address. Defaults to DefaultAddr.
	Addr string

	// Asker answers questions posted to /ask.
	Asker siterag.Asker

	// Logger receives internal error details. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewServer returns a new Server answering questions with asker.
func NewServer(asker siterag.Asker) *Server {
	s := &Server{
		Addr:   DefaultAddr,
		Asker:  asker,
		Logger: slog.Default(),
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the router for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /ask", s.handleAsk)
	return mux
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("api server", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusMessage)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, r, siterag.Errorf(siterag.EINVALID, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.Error(w, r, siterag.Errorf(siterag.EINVALID, "query required"))
		return
	}

	answer, err := s.Asker.Ask(r.Context(), req.Query)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Answer: answer})
}

// Error writes err as a JSON error response with a status derived from
// its application code. Internal errors are logged.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := siterag.ErrorCode(err), siterag.ErrorMessage(err)
	if code == siterag.EINTERNAL {
		s.Logger.Error("api request", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, ErrorStatusCode(code), errorResponse{
		Detail: "Error processing query: " + message,
	})
}

var codes = map[string]int{
	siterag.ECONFLICT:       http.StatusConflict,
	siterag.EINVALID:        http.StatusBadRequest,
	siterag.ENOTFOUND:       http.StatusNotFound,
	siterag.ENOTIMPLEMENTED: http.StatusNotImplemented,
	siterag.EINTERNAL:       http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
