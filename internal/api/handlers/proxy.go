package handlers

import (
	"net/http"
	"strconv"
)

// PicsumImage godoc
// @Summary Proxy a picsum.photos image
// @Description Fetches https://picsum.photos/id/{id}/{width}/{height} through the server so clients never call picsum directly.
// @Tags Images
// @Produce image/jpeg
// @Param id path int true "Picsum image ID"
// @Param width path int true "Width in pixels"
// @Param height path int true "Height in pixels"
// @Success 200 {file} binary
// @Failure 400 {object} utils.Payload "Invalid path"
// @Failure 404 {object} utils.Payload "Unknown image"
// @Failure 502 {object} utils.Payload "Upstream failure"
// @Failure 504 {object} utils.Payload "Upstream timeout"
// @Router /proxy/picsum/{id}/{width}/{height} [get]
func (h *Handler) PicsumImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.picsum.Fetch(r.Context(), r.PathValue("id"), r.PathValue("width"), r.PathValue("height"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Body)))
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Body)
}

// CachedImages reports how many picsum images the proxy currently holds.
func (h *Handler) CachedImages() int {
	if h.picsum == nil {
		return 0
	}
	return h.picsum.Cached()
}
