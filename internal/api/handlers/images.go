package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rohits-web03/minifeed/internal/store"
	"github.com/rohits-web03/minifeed/internal/utils"
)

const sniffLen = 512

// UploadImage godoc
// @Summary Attach an image to a post
// @Description Stores the uploaded image and points the post at it. A previously uploaded image is removed. Only the author may change the image.
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post ID"
// @Param image formData file true "Image file (png, jpg, gif or webp)"
// @Success 200 {object} utils.Payload{data=models.Post}
// @Failure 400 {object} utils.Payload "Missing or unsupported image"
// @Failure 403 {object} utils.Payload "Not the author"
// @Failure 404 {object} utils.Payload "Post not found"
// @Failure 413 {object} utils.Payload "Image too large"
// @Security ApiKeyAuth
// @Router /post/{id}/image [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.requireOwner(w, r, id) {
		return
	}

	// Leave room for the multipart envelope around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.Fail(w, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}
		utils.Fail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "No image provided")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		utils.Fail(w, http.StatusRequestEntityTooLarge, "Image too large")
		return
	}
	name, ok := utils.ImageFilename(header.Filename)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		utils.Fail(w, http.StatusBadRequest, "Could not read image")
		return
	}
	head = head[:n]
	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		utils.Fail(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	body := io.MultiReader(bytes.NewReader(head), file)
	if err := h.images.Save(r.Context(), name, contentType, body, header.Size); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, previous, err := h.store.AttachImage(id, name)
	if err != nil {
		h.removeUpload(r, store.UploadPathPrefix+name)
		h.writeError(w, r, err)
		return
	}
	if previous != post.ImageURL {
		h.removeUpload(r, previous)
	}

	h.logger.InfoContext(r.Context(), "image attached", "post_id", id, "name", name, "size", header.Size)
	utils.OK(w, http.StatusOK, "Image uploaded successfully", post)
}

// DeleteImage godoc
// @Summary Remove a post's image
// @Tags Images
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.Payload
// @Failure 403 {object} utils.Payload "Not the author"
// @Failure 404 {object} utils.Payload "Post not found"
// @Security ApiKeyAuth
// @Router /post/{id}/image [delete]
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.requireOwner(w, r, id) {
		return
	}

	previous, err := h.store.DetachImage(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.removeUpload(r, previous)

	utils.OK(w, http.StatusOK, "Image removed successfully", nil)
}

// ServeUpload godoc
// @Summary Fetch an uploaded image
// @Description Serves the file from local storage or redirects to a short-lived bucket URL.
// @Tags Images
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Success 302 {string} string "Redirect to the bucket"
// @Failure 404 {object} utils.Payload "Image not found"
// @Router /uploads/posts/{filename} [get]
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	img, err := h.images.Resolve(r.Context(), r.PathValue("filename"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if img.URL != "" {
		http.Redirect(w, r, img.URL, http.StatusFound)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, img.Path)
}
