package relay

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"deaddrop/internal/domain"
)

// Server exposes the relay over HTTP. It owns no state of its own; every
// operation is delegated to the core services.
type Server struct {
	admitter domain.Admitter
	registry domain.Registry
	store    domain.MessageStore
	chunks   domain.Reassembler
	log      *zap.Logger
	now      func() time.Time
}

// NewServer wires the HTTP surface over the given services.
func NewServer(
	admitter domain.Admitter,
	registry domain.Registry,
	store domain.MessageStore,
	chunks domain.Reassembler,
	log *zap.Logger,
) *Server {
	return &Server{
		admitter: admitter,
		registry: registry,
		store:    store,
		chunks:   chunks,
		log:      log,
		now:      time.Now,
	}
}

// Router builds the route table. Admission control wraps every route.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, s.admit)

	r.HandleFunc("/api/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/register-journalist", s.handleRegisterJournalist).Methods(http.MethodPost)
	r.HandleFunc("/api/message", s.handleSendMessage).Methods(http.MethodPost)
	r.HandleFunc("/api/chunk", s.handleSendChunk).Methods(http.MethodPost)
	r.HandleFunc("/api/messages", s.handleGetMessages).Methods(http.MethodGet)
	r.HandleFunc("/api/nuke", s.handleNuke).Methods(http.MethodPost)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	return r
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	key, err := s.registry.RegisterUser(req.Hash)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := registerResponse{Success: true}
	if key != "" {
		resp.JournalistPublicKey = &key
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegisterJournalist(w http.ResponseWriter, r *http.Request) {
	var req journalistRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.registry.RegisterJournalist(req.PublicKey, req.Secret); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	m := domain.Message{
		From:            req.From,
		To:              req.To,
		Payload:         req.EncryptedData,
		HasFiles:        req.HasFiles,
		SenderPublicKey: req.UserPublicKey,
	}
	if req.Timestamp > 0 {
		m.CreatedAt = time.UnixMilli(req.Timestamp)
	}
	id, err := s.store.Append(m)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, MessageID: id})
}

func (s *Server) handleSendChunk(w http.ResponseWriter, r *http.Request) {
	var req domain.Chunk
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	received, total, err := s.chunks.Submit(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chunkResponse{Success: true, Received: received, Total: total})
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	userType := r.URL.Query().Get("userType")

	var msgs []domain.Message
	switch {
	case userType == "journalist":
		msgs = s.store.ListForJournalist()
	default:
		hash := r.URL.Query().Get("hash")
		if !domain.ValidHash(hash) {
			s.writeError(w, domain.ErrInvalidInput)
			return
		}
		msgs = s.store.ListForUser(hash)
	}
	writeJSON(w, http.StatusOK, messagesResponse{Messages: msgs})
}

// handleNuke is the privacy wipe: every trace of the sender goes at once.
func (s *Server) handleNuke(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if !domain.ValidHash(req.Hash) {
		s.writeError(w, domain.ErrInvalidInput)
		return
	}
	removed := s.store.PurgeSender(req.Hash)
	s.registry.Forget(req.Hash)
	s.chunks.DropSender(req.Hash)

	s.log.Info("sender purged", zap.Int("messagesRemoved", removed))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UnixMilli(),
	})
}

// admit applies per-client rate limiting before any handler runs.
func (s *Server) admit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.admitter.Admit(clientKey(r)); err != nil {
			s.writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests is the access log: method, path, remote, status, duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", clientKey(r)),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// clientKey identifies the caller for admission control: the remote address
// without its ephemeral port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeError maps domain error kinds onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrCapacityExceeded):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrTooManyRequests):
		status = http.StatusTooManyRequests
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, out any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
