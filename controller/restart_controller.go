package controller

import (
	"context"
	"net/http"
	"sandbay-backend/models"
	"sandbay-backend/services"
	"sandbay-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type RestartController struct {
	ctx     context.Context
	restart services.RestartServiceInterface
	logger  logger.Logger
}

func NewRestartController(ctx context.Context, restart services.RestartServiceInterface, logger logger.Logger) *RestartController {
	return &RestartController{
		ctx:     ctx,
		restart: restart,
		logger:  logger,
	}
}

// RestartServices handles POST /api/v1/workspaces/:id/services/restart
// @Summary Restart all services in a workspace
// @Description Restart every configured service in every repository of the workspace's sandbox. The sandbox is started first unless skip_start is set.
// @Tags Restart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Sandbox ID"
// @Param request body models.ServiceRestartRequest false "Restart options"
// @Success 200 {object} models.APIResponse "Restart run completed"
// @Failure 401 {object} models.APIResponse "Unauthorized - Not the workspace owner"
// @Failure 404 {object} models.APIResponse "Not Found - No workspace for this sandbox"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Sandbox could not be started"
// @Router /workspaces/{id}/services/restart [post]
func (h *RestartController) RestartServices(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondMissingClaims(c)
		return
	}

	// The request body is optional; an absent body means the default flow.
	var req models.ServiceRestartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = models.ServiceRestartRequest{}
	}

	sandboxID := c.Param("id")

	var report *models.RestartReport
	var err error
	if req.SkipStart {
		report, err = h.restart.RestartServices(c.Request.Context(), sandboxID, claims)
	} else {
		report, err = h.restart.RestartServicesComplete(c.Request.Context(), sandboxID, claims)
	}
	if err != nil {
		outcome := services.ClassifyOutcome(err)
		h.logger.Errorf("Restart run for sandbox %s failed (%s): %v", sandboxID, outcome, err)
		c.JSON(outcome.HTTPStatus(), models.APIResponse{
			Status:  "error",
			Code:    outcome.HTTPStatus(),
			Message: "Restart run failed",
			Error: &models.APIError{
				Type:    outcome.ErrorType(),
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Restart run completed",
		Data:    report,
	})
}
