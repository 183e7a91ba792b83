package handler

import (
	"errors"
	"net/http"

	"clinic-backend/internal/service"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RefreshTokenCookie holds the refresh token between requests
const RefreshTokenCookie = "refresh_token"

type AuthHandler struct {
	authService  *service.AuthService
	log          zerolog.Logger
	secureCookie bool
}

// NewAuthHandler builds the auth endpoints; secureCookie should be true behind HTTPS
func NewAuthHandler(authService *service.AuthService, log zerolog.Logger, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		log:          log,
		secureCookie: secureCookie,
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if !bindJSON(c, &input, labelAuth) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, labelAuth, "Invalid username or password")
			return
		}
		respondError(c, h.log, err, labelAuth)
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Register creates an account and logs it in
func (h *AuthHandler) Register(c *gin.Context) {
	const label = "Registration failed"

	var input service.RegisterInput
	if !bindJSON(c, &input, label) {
		return
	}

	response, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, label, map[string][]string{
				"username": {"A user with that username already exists."},
			})
			return
		}
		respondError(c, h.log, err, label)
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Refresh generates a new access token from the refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := h.refreshToken(c)
	if refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, labelAuth, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			utils.ErrorResponse(c, http.StatusUnauthorized, labelAuth, "Invalid or revoked refresh token")
			return
		}
		respondError(c, h.log, err, labelAuth)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if refreshToken := h.refreshToken(c); refreshToken != "" {
		if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
			respondError(c, h.log, err, "")
			return
		}
	}

	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", h.secureCookie, true)
	utils.MessageResponse(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		RefreshTokenCookie,
		token,
		int(utils.GetRefreshTokenExpiry().Seconds()),
		"/",
		"", // current domain
		h.secureCookie,
		true, // httpOnly
	)
}

// refreshToken reads the cookie, falling back to a JSON body for non-browser clients
func (h *AuthHandler) refreshToken(c *gin.Context) string {
	if token, err := c.Cookie(RefreshTokenCookie); err == nil && token != "" {
		return token
	}

	var req refreshRequest
	if c.Request.ContentLength != 0 && c.ShouldBindJSON(&req) == nil {
		return req.RefreshToken
	}
	return ""
}
