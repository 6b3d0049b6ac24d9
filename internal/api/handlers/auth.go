package handlers

import (
	"net/http"
	"time"

	"github.com/rohits-web03/minifeed/internal/api/middleware"
	"github.com/rohits-web03/minifeed/internal/models"
	"github.com/rohits-web03/minifeed/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and returns a token. The token is also set as an HttpOnly cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Username and password"
// @Success 200 {object} utils.Payload{data=LoginResponse}
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 401 {object} utils.Payload "Invalid credentials"
// @Failure 429 {object} utils.Payload "Too many attempts"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := decodeJSON(r, &input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if !h.store.CheckCredentials(input.Username, input.Password) {
		h.logger.InfoContext(r.Context(), "login rejected", "username", input.Username)
		utils.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	user, ok := h.store.GetUserByUsername(input.Username)
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, expiration, err := middleware.IssueToken(h.jwtSecret, user.ID, user.Username, h.tokenTTL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// Cross-site frontends need SameSite=None, which browsers only honour on
	// secure cookies.
	sameSite := http.SameSiteLaxMode
	if h.secureCookies {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiration).Seconds()),
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: sameSite,
	})

	utils.OK(w, http.StatusOK, "Login successful", LoginResponse{Token: token, User: user})
}

// Logout godoc
// @Summary Log out
// @Description Clears the token cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.OK(w, http.StatusOK, "Logged out successfully", nil)
}
