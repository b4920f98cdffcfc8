package controller

import (
	"context"
	"errors"
	"net/http"
	"sandbay-backend/models"
	"sandbay-backend/services"
	"sandbay-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type GitHubController struct {
	ctx    context.Context
	repos  services.RepoListServiceInterface
	logger logger.Logger
}

func NewGitHubController(ctx context.Context, repos services.RepoListServiceInterface, logger logger.Logger) *GitHubController {
	return &GitHubController{
		ctx:    ctx,
		repos:  repos,
		logger: logger,
	}
}

// ListRepositories handles GET /api/v1/github/repositories
// @Summary List GitHub repositories
// @Description List the repositories of a GitHub user or organization via the gh CLI
// @Tags GitHub
// @Security BearerAuth
// @Produce json
// @Param owner query string true "GitHub user or organization"
// @Success 200 {object} models.APIResponse "Repositories retrieved successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Missing owner parameter"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 404 {object} models.APIResponse "Not Found - Unknown GitHub owner"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Listing failed"
// @Router /github/repositories [get]
func (h *GitHubController) ListRepositories(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: "owner query parameter is required",
				Field:   "owner",
			},
		})
		return
	}

	listing, err := h.repos.ListRepositories(c.Request.Context(), owner)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Status:  "error",
				Code:    http.StatusNotFound,
				Message: "GitHub owner not found",
				Error: &models.APIError{
					Type:    "NotFoundError",
					Details: err.Error(),
				},
			})
			return
		}

		h.logger.Errorf("Failed to list repositories for %s: %v", owner, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to list repositories",
			Error: &models.APIError{
				Type:    "ProviderError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Repositories retrieved successfully",
		Data:    listing,
	})
}
