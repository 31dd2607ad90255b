package handlers

import (
	"net/http"

	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	apperrors "github.com/gigboard/gigboard-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

type FreelancerHandler struct {
	service services.FreelancerServiceInterface
	baseURL string
}

func NewFreelancerHandler(service services.FreelancerServiceInterface, baseURL string) *FreelancerHandler {
	return &FreelancerHandler{
		service: service,
		baseURL: baseURL,
	}
}

// GetPublicFreelancers handles GET /api/v1/freelancers.
// Supports ?skill= filtering against the cached directory.
func (h *FreelancerHandler) GetPublicFreelancers(c *gin.Context) {
	opts := models.FilterOptions{
		OnlyVisible: true,
		Skill:       c.Query("skill"),
	}

	freelancers, err := h.service.GetAllFreelancers(c.Request.Context(), opts)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotReady) {
			respondError(c, http.StatusServiceUnavailable, "Service is starting up", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch freelancers", err)
		return
	}

	publicFreelancers := make([]models.PublicFreelancerResponse, 0, len(freelancers))
	for _, freelancer := range freelancers {
		publicFreelancers = append(publicFreelancers, freelancer.ToPublicResponse(h.baseURL))
	}

	c.JSON(http.StatusOK, gin.H{"freelancers": publicFreelancers})
}

// GetPublicFreelancerBySlug handles GET /api/v1/freelancer/:slug
func (h *FreelancerHandler) GetPublicFreelancerBySlug(c *gin.Context) {
	slug := c.Param("slug")

	freelancer, err := h.service.GetFreelancerBySlug(c.Request.Context(), slug, models.FilterOptions{OnlyVisible: true})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotReady) {
			respondError(c, http.StatusServiceUnavailable, "Service is starting up", err)
			return
		}
		respondError(c, http.StatusNotFound, "Freelancer not found", err)
		return
	}

	c.JSON(http.StatusOK, freelancer.ToPublicResponse(h.baseURL))
}

// GetSkills handles GET /api/v1/skills
func (h *FreelancerHandler) GetSkills(c *gin.Context) {
	skills, err := h.service.GetAllSkills(c.Request.Context())
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotReady) {
			respondError(c, http.StatusServiceUnavailable, "Service is starting up", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch skills", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// GetInternalFreelancers handles POST /api/v1/internal/freelancers.
// Used by trusted backend consumers, returns full records including
// hidden profiles when requested.
func (h *FreelancerHandler) GetInternalFreelancers(c *gin.Context) {
	forceRefresh := c.Query("force_reset_cache") == "true"
	slug := c.Query("slug")

	var body struct {
		OnlyVisible bool `json:"only_visible"`
		ShowHidden  bool `json:"show_hidden"`
	}
	_ = c.ShouldBindJSON(&body)

	opts := models.FilterOptions{
		OnlyVisible:  body.OnlyVisible,
		ShowHidden:   body.ShowHidden,
		ForceRefresh: forceRefresh,
	}

	if slug != "" {
		freelancer, err := h.service.GetFreelancerBySlug(c.Request.Context(), slug, opts)
		if err != nil {
			respondError(c, http.StatusNotFound, "Freelancer not found", err)
			return
		}
		c.JSON(http.StatusOK, freelancer)
		return
	}

	freelancers, err := h.service.GetAllFreelancers(c.Request.Context(), opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch freelancers", err)
		return
	}

	c.JSON(http.StatusOK, freelancers)
}
