package handlers

import (
	"errors"
	"net/http"

	"github.com/gigboard/gigboard-api/internal/middleware"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler implements the wallet sign-in flow: the client requests
// a challenge, signs it with the wallet key, and exchanges the
// signature for a session cookie.
type AuthHandler struct {
	service services.AuthServiceInterface
}

func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RequestChallenge handles POST /api/v1/auth/freelancer/challenge
func (h *AuthHandler) RequestChallenge(c *gin.Context) {
	var req models.WalletChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}

	resp, err := h.service.RequestChallenge(c.Request.Context(), req.WalletAddress)
	if err != nil {
		if errors.Is(err, services.ErrFreelancerNotFound) {
			attachError(c, err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "No freelancer registered with this wallet",
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create challenge", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyWallet handles POST /api/v1/auth/freelancer/verify.
// On success it sets the session cookie alongside the JSON response.
func (h *AuthHandler) VerifyWallet(c *gin.Context) {
	var req models.WalletVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}

	session, token, err := h.service.VerifyWallet(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeExpired):
			attachError(c, err)
			c.JSON(http.StatusUnauthorized, models.WalletVerifyResponse{
				Success: false,
				Error:   "Challenge expired, request a new one",
			})
		case errors.Is(err, services.ErrInvalidSignature):
			attachError(c, err)
			c.JSON(http.StatusUnauthorized, models.WalletVerifyResponse{
				Success: false,
				Error:   "Signature verification failed",
			})
		case errors.Is(err, services.ErrFreelancerNotFound):
			attachError(c, err)
			c.JSON(http.StatusUnauthorized, models.WalletVerifyResponse{
				Success: false,
				Error:   "No freelancer registered with this wallet",
			})
		default:
			respondError(c, http.StatusInternalServerError, "Failed to verify signature", err)
		}
		return
	}

	middleware.SetSessionCookie(c, token, h.service.GetSessionTTL(), h.service.GetCookieDomain(), h.service.GetCookieSecure())

	c.JSON(http.StatusOK, models.WalletVerifyResponse{
		Success:   true,
		Name:      session.Name,
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}

// Logout handles POST /api/v1/auth/freelancer/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.service.GetCookieDomain(), h.service.GetCookieSecure())

	c.JSON(http.StatusOK, models.LogoutResponse{
		Success: true,
		Message: "Logged out",
	})
}

// GetSession handles GET /api/v1/auth/freelancer/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := middleware.GetFreelancerSession(c)
	if err != nil {
		attachError(c, err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": session,
	})
}
