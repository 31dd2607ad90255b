package handlers

import (
	"net/http"

	"github.com/gigboard/gigboard-api/internal/models"
	"github.com/gigboard/gigboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

// frameErrorMessage is the single error body frame clients receive.
// Frame renderers show raw API errors to end users, so failures are kept
// uniform and the cause only goes to the request log.
const frameErrorMessage = "Failed to process frame request"

// FrameHandler handles frame transaction endpoints
type FrameHandler struct {
	service services.FrameServiceInterface
}

// NewFrameHandler creates a new frame handler
func NewFrameHandler(service services.FrameServiceInterface) *FrameHandler {
	return &FrameHandler{service: service}
}

// PrepareDepositApproval handles POST /api/v1/frames/deposit/approval.
// It returns the ERC-20 approve transaction the frame client must submit
// before depositing USDC.
func (h *FrameHandler) PrepareDepositApproval(c *gin.Context) {
	var req models.FrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, frameErrorMessage, err)
		return
	}

	resp, err := h.service.PrepareApproval(c.Request.Context(), req.UntrustedData)
	if err != nil {
		respondError(c, http.StatusBadRequest, frameErrorMessage, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
