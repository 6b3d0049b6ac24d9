package handlers

import (
	"net/http"
	"strings"

	"github.com/rohits-web03/minifeed/internal/api/middleware"
	"github.com/rohits-web03/minifeed/internal/models"
	"github.com/rohits-web03/minifeed/internal/store"
	"github.com/rohits-web03/minifeed/internal/utils"
)

const defaultPageSize = 10

type contentRequest struct {
	Content string `json:"content"`
}

type PostsPage struct {
	Posts []models.PostWithUser `json:"posts"`
	Total int                   `json:"total"`
}

// ListPosts godoc
// @Summary List the feed
// @Description Top-level posts, newest first, with author and reply count.
// @Tags Posts
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Posts to skip" default(0)
// @Success 200 {object} utils.Payload{data=PostsPage}
// @Router /posts [get]
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", defaultPageSize)
	offset := utils.QueryInt(r, "offset", 0)

	utils.OK(w, http.StatusOK, "Posts retrieved successfully", PostsPage{
		Posts: h.store.GetPostsPage(limit, offset),
		Total: h.store.CountPosts(),
	})
}

// GetPost godoc
// @Summary Get a post with its replies
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.Payload{data=models.PostWithReplies}
// @Failure 404 {object} utils.Payload "Post not found"
// @Router /post/{id} [get]
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.GetPostWithReplies(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.OK(w, http.StatusOK, "Post retrieved successfully", post)
}

// CreatePost godoc
// @Summary Publish a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body contentRequest true "Post content"
// @Success 201 {object} utils.Payload{data=models.Post}
// @Failure 400 {object} utils.Payload "Empty content"
// @Failure 401 {object} utils.Payload "Unauthorized"
// @Security ApiKeyAuth
// @Router /post [post]
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input contentRequest
	if err := decodeJSON(r, &input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	post, err := h.store.CreatePost(userID, strings.TrimSpace(input.Content))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.OK(w, http.StatusCreated, "Post created successfully", post)
}

// EditPost godoc
// @Summary Edit a post
// @Description Only the author may edit a post.
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body contentRequest true "New content"
// @Success 200 {object} utils.Payload{data=models.Post}
// @Failure 400 {object} utils.Payload "Empty content"
// @Failure 403 {object} utils.Payload "Not the author"
// @Failure 404 {object} utils.Payload "Post not found"
// @Security ApiKeyAuth
// @Router /post/{id} [put]
func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.requireOwner(w, r, id) {
		return
	}
	var input contentRequest
	if err := decodeJSON(r, &input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	post, err := h.store.EditPost(id, strings.TrimSpace(input.Content))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.OK(w, http.StatusOK, "Post updated successfully", post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Removes the post, every reply to it and its uploaded image. Only the author may delete a post.
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.Payload
// @Failure 403 {object} utils.Payload "Not the author"
// @Failure 404 {object} utils.Payload "Post not found"
// @Security ApiKeyAuth
// @Router /post/{id} [delete]
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.requireOwner(w, r, id) {
		return
	}
	imageURL, err := h.store.DeletePost(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.removeUpload(r, imageURL)

	utils.OK(w, http.StatusOK, "Post deleted successfully", nil)
}

// CreateReply godoc
// @Summary Reply to a post
// @Description Replies are one level deep; replying to a reply is not found.
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Parent post ID"
// @Param reply body contentRequest true "Reply content"
// @Success 201 {object} utils.Payload{data=models.Reply}
// @Failure 400 {object} utils.Payload "Empty content"
// @Failure 404 {object} utils.Payload "Post not found"
// @Security ApiKeyAuth
// @Router /post/{id}/reply [post]
func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input contentRequest
	if err := decodeJSON(r, &input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	reply, err := h.store.CreateReply(r.PathValue("id"), userID, strings.TrimSpace(input.Content))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.OK(w, http.StatusCreated, "Reply created successfully", reply)
}

// removeUpload deletes a stored image that is no longer referenced. Seeded
// and proxied URLs are left alone. Failures are only logged since the post
// itself has already changed.
func (h *Handler) removeUpload(r *http.Request, imageURL string) {
	name, ok := strings.CutPrefix(imageURL, store.UploadPathPrefix)
	if !ok || name == "" {
		return
	}
	if err := h.images.Delete(r.Context(), name); err != nil {
		h.logger.WarnContext(r.Context(), "failed to remove uploaded image", "name", name, "error", err)
	}
}
