package handlers

import (
	"net/http"

	"github.com/rohits-web03/minifeed/internal/utils"
)

// ListUsers godoc
// @Summary List every user profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.Payload{data=[]models.User}
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	utils.OK(w, http.StatusOK, "Users retrieved successfully", h.store.ListUsers())
}

// ListUsersMinimal godoc
// @Summary List every user without registration details
// @Tags Users
// @Produce json
// @Success 200 {object} utils.Payload{data=[]models.UserMinimal}
// @Router /users/minimal [get]
func (h *Handler) ListUsersMinimal(w http.ResponseWriter, r *http.Request) {
	utils.OK(w, http.StatusOK, "Users retrieved successfully", h.store.ListUsersMinimal())
}

// GetUser godoc
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.Payload{data=models.User}
// @Failure 404 {object} utils.Payload "User not found"
// @Router /user/{username} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.GetUserByUsername(r.PathValue("username"))
	if !ok {
		utils.Fail(w, http.StatusNotFound, "User not found")
		return
	}
	utils.OK(w, http.StatusOK, "User retrieved successfully", user)
}

// GetUserPosts godoc
// @Summary List a user's posts
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Posts to skip" default(0)
// @Success 200 {object} utils.Payload{data=PostsPage}
// @Failure 404 {object} utils.Payload "User not found"
// @Router /user/{username}/posts [get]
func (h *Handler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	limit := utils.QueryInt(r, "limit", defaultPageSize)
	offset := utils.QueryInt(r, "offset", 0)

	total, err := h.store.GetUserPostCount(username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	posts, err := h.store.GetUserPosts(username, limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.OK(w, http.StatusOK, "Posts retrieved successfully", PostsPage{Posts: posts, Total: total})
}
