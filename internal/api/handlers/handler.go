package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rohits-web03/minifeed/internal/api/middleware"
	"github.com/rohits-web03/minifeed/internal/api/services"
	"github.com/rohits-web03/minifeed/internal/repositories"
	"github.com/rohits-web03/minifeed/internal/store"
	"github.com/rohits-web03/minifeed/internal/utils"
)

// Handler serves the feed API on top of a single store.
type Handler struct {
	store  *store.Store
	images repositories.ImageStorage
	picsum *services.PicsumProxy
	logger *slog.Logger

	jwtSecret      []byte
	tokenTTL       time.Duration
	secureCookies  bool
	maxUploadBytes int64
}

type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	SecureCookies bool
	MaxUploadMB   int64
	Logger        *slog.Logger
}

func New(st *store.Store, images repositories.ImageStorage, picsum *services.PicsumProxy, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	maxMB := opts.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 5
	}
	return &Handler{
		store:          st,
		images:         images,
		picsum:         picsum,
		logger:         logger,
		jwtSecret:      []byte(opts.JWTSecret),
		tokenTTL:       ttl,
		secureCookies:  opts.SecureCookies,
		maxUploadBytes: maxMB << 20,
	}
}

// JWTSecret is the key the auth middleware verifies tokens with.
func (h *Handler) JWTSecret() []byte {
	return h.jwtSecret
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, store.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	case errors.Is(err, repositories.ErrImageNotFound):
		status, message = http.StatusNotFound, "Image not found"
	case errors.Is(err, services.ErrInvalidImagePath):
		status, message = http.StatusBadRequest, "Invalid image path"
	case errors.Is(err, services.ErrUpstreamNotFound):
		status, message = http.StatusNotFound, "Image not found"
	case errors.Is(err, services.ErrUpstreamTimeout):
		status, message = http.StatusGatewayTimeout, "Image source timed out"
	case errors.Is(err, services.ErrUpstreamFailed), errors.Is(err, services.ErrImageTooLarge):
		status, message = http.StatusBadGateway, "Image source unavailable"
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	utils.Fail(w, status, message)
}

// requireOwner loads the post and checks that the caller wrote it. It writes
// the error response itself and reports whether the caller may continue.
// Authorship never changes, but the post's image may; read it from the
// mutation that replaces it, not from here.
func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, postID string) bool {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	post, err := h.store.GetPost(postID)
	if err != nil {
		h.writeError(w, r, err)
		return false
	}
	if post.UserID != userID {
		utils.Fail(w, http.StatusForbidden, "You can only modify your own posts")
		return false
	}
	return true
}
