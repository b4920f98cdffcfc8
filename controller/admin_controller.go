package controller

import (
	"context"
	"errors"
	"net/http"
	"sandbay-backend/models"
	"sandbay-backend/utils/logger"
	"sandbay-backend/worker"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	ctx    context.Context
	reaper *worker.Reaper
	logger logger.Logger
}

func NewAdminController(ctx context.Context, reaper *worker.Reaper, logger logger.Logger) *AdminController {
	return &AdminController{
		ctx:    ctx,
		reaper: reaper,
		logger: logger,
	}
}

// GetReaperStatus handles GET /api/v1/admin/reaper/status
// @Summary Get reaper status
// @Description Retrieve the outcome of the most recent idle-sandbox sweep
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Reaper status retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin access required"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Failed to read reaper status"
// @Router /admin/reaper/status [get]
func (h *AdminController) GetReaperStatus(c *gin.Context) {
	status, err := h.reaper.Status()
	if err != nil {
		h.logger.Errorf("Failed to read reaper status: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to read reaper status",
			Error: &models.APIError{
				Type:    "ReaperError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Reaper status retrieved successfully",
		Data:    status,
	})
}

// TriggerSweep handles POST /api/v1/admin/reaper/sweep
// @Summary Trigger a reaper sweep
// @Description Run one idle-sandbox sweep immediately
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Sweep completed"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin access required"
// @Failure 409 {object} models.APIResponse "Conflict - Another sweep is in progress"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Sweep failed"
// @Router /admin/reaper/sweep [post]
func (h *AdminController) TriggerSweep(c *gin.Context) {
	result, err := h.reaper.Sweep(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrSweepInProgress) {
			h.logger.Warnf("Sweep request denied, another sweep holds the lock")
			c.JSON(http.StatusConflict, models.APIResponse{
				Status:  "error",
				Code:    http.StatusConflict,
				Message: "Sweep already in progress",
				Error: &models.APIError{
					Type:    "ConflictError",
					Details: "Another sweep holds the reaper lock. Retry after it finishes",
				},
			})
			return
		}

		h.logger.Errorf("Sweep failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Sweep failed",
			Error: &models.APIError{
				Type:    "ReaperError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Sweep completed",
		Data:    result,
	})
}
