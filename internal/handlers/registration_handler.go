package handlers

import (
	"net/http"

	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles freelancer registration endpoints
type RegistrationHandler struct {
	service services.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service services.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// RegisterFreelancer handles POST /api/v1/register-freelancer
func (h *RegistrationHandler) RegisterFreelancer(c *gin.Context) {
	var req models.RegisterFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validationErrors, err)
		return
	}

	resp, err := h.service.RegisterFreelancer(c.Request.Context(), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			attachError(c, err)
			c.JSON(http.StatusConflict, gin.H{"message": "This wallet is already registered"})
			return
		}
		if resp != nil && resp.Error != "" {
			attachError(c, err)
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
