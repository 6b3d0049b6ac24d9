package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohits-web03/minifeed/internal/api/services"
	"github.com/rohits-web03/minifeed/internal/repositories"
	"github.com/rohits-web03/minifeed/internal/store"
)

func TestWriteError(t *testing.T) {
	var logs bytes.Buffer
	h := New(nil, nil, nil, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: content is required", store.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("post %q: %w", "9", store.ErrNotFound), http.StatusNotFound},
		{repositories.ErrImageNotFound, http.StatusNotFound},
		{services.ErrInvalidImagePath, http.StatusBadRequest},
		{services.ErrUpstreamNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: deadline", services.ErrUpstreamTimeout), http.StatusGatewayTimeout},
		{services.ErrUpstreamFailed, http.StatusBadGateway},
		{services.ErrImageTooLarge, http.StatusBadGateway},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.writeError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), tc.err)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}

	assert.Contains(t, logs.String(), "disk on fire")
	assert.NotContains(t, logs.String(), "content is required")
}

func TestNew_Defaults(t *testing.T) {
	h := New(nil, nil, nil, Options{JWTSecret: "s"})
	assert.Equal(t, int64(5<<20), h.maxUploadBytes)
	assert.Equal(t, []byte("s"), h.JWTSecret())
	assert.Positive(t, h.tokenTTL)
}
