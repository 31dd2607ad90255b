package handlers

import (
	"net/http"

	"github.com/gigboard/gigboard-api/internal/middleware"
	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated freelancer's own profile.
// All routes require the session middleware.
type ProfileHandler struct {
	service services.ProfileServiceInterface
}

func NewProfileHandler(service services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile handles GET /api/v1/freelancer/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session, err := middleware.GetFreelancerSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not authenticated", err)
		return
	}

	freelancer, err := h.service.GetProfile(c.Request.Context(), session.FreelancerUUID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"freelancer": freelancer,
	})
}

// UpdateProfile handles POST /api/v1/freelancer/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	session, err := middleware.GetFreelancerSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not authenticated", err)
		return
	}

	var req models.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}

	if err := h.service.SaveProfile(c.Request.Context(), session.FreelancerUUID, &req); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	c.JSON(http.StatusOK, models.SaveProfileResponse{
		Success: true,
		Message: "Profile updated",
	})
}

// UploadAvatar handles POST /api/v1/freelancer/profile/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	session, err := middleware.GetFreelancerSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not authenticated", err)
		return
	}

	var req models.UploadAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}

	avatarURL, err := h.service.UploadAvatar(c.Request.Context(), session.FreelancerUUID, &req)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error(), err)
		case apperrors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Profile not found", err)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to upload avatar", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.UploadAvatarResponse{
		Success:   true,
		Message:   "Avatar uploaded successfully",
		AvatarURL: avatarURL,
	})
}
