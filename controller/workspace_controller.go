package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sandbay-backend/models"
	"sandbay-backend/services"
	"sandbay-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type WorkspaceController struct {
	ctx        context.Context
	workspaces services.WorkspaceServiceInterface
	sandboxes  services.SandboxServiceInterface
	logger     logger.Logger
	validator  *validator.Validate
}

func NewWorkspaceController(ctx context.Context, workspaces services.WorkspaceServiceInterface, sandboxes services.SandboxServiceInterface, logger logger.Logger) *WorkspaceController {
	return &WorkspaceController{
		ctx:        ctx,
		workspaces: workspaces,
		sandboxes:  sandboxes,
		logger:     logger,
		validator:  validator.New(),
	}
}

// formatValidationErrors formats validation errors into readable messages
func (h *WorkspaceController) formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "min":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param()+" characters/items")
			case "max":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at most "+fieldError.Param()+" characters/items")
			case "startswith":
				errorMessages = append(errorMessages, fieldError.Field()+" must start with "+fieldError.Param())
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	return strings.Join(errorMessages, "; ")
}

// claimsFromContext pulls the JWT claims stored by the auth middleware.
func claimsFromContext(c *gin.Context) (*models.JWTClaims, bool) {
	claimsValue, exists := c.Get("jwt_claims")
	if !exists {
		return nil, false
	}
	claims, ok := claimsValue.(*models.JWTClaims)
	return claims, ok
}

// respondMissingClaims writes the envelope for a request that reached a
// protected handler without claims in its context.
func respondMissingClaims(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.APIResponse{
		Status:  "error",
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
		Error: &models.APIError{
			Type:    "AuthenticationError",
			Details: "No token claims in request context",
		},
	})
}

// CreateWorkspace handles POST /api/v1/workspaces
// @Summary Register a workspace
// @Description Bind a sandbox and its repositories to the authenticated user
// @Tags Workspaces
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateWorkspaceRequest true "Workspace registration request"
// @Success 201 {object} models.APIResponse "Workspace registered successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid workspace data"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 409 {object} models.APIResponse "Conflict - Sandbox already registered"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Registration failed"
// @Router /workspaces [post]
func (h *WorkspaceController) CreateWorkspace(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondMissingClaims(c)
		return
	}

	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Error("Validation failed:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: h.formatValidationErrors(err),
			},
		})
		return
	}

	workspace, err := h.workspaces.CreateWorkspace(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, models.APIResponse{
				Status:  "error",
				Code:    http.StatusConflict,
				Message: "Workspace already exists",
				Error: &models.APIError{
					Type:    "ConflictError",
					Details: "This sandbox is already registered as a workspace",
				},
			})
			return
		}

		h.logger.Errorf("Failed to create workspace: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to create workspace",
			Error: &models.APIError{
				Type:    "DatabaseError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Workspace registered successfully",
		Data:    workspace,
	})
}

// ListWorkspaces handles GET /api/v1/workspaces
// @Summary List workspaces
// @Description List the workspaces owned by the authenticated user
// @Tags Workspaces
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Workspaces retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Listing failed"
// @Router /workspaces [get]
func (h *WorkspaceController) ListWorkspaces(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondMissingClaims(c)
		return
	}

	workspaces, err := h.workspaces.ListWorkspaces(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Errorf("Failed to list workspaces for %s: %v", claims.UserID, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to list workspaces",
			Error: &models.APIError{
				Type:    "DatabaseError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Workspaces retrieved successfully",
		Data: gin.H{
			"workspaces": workspaces,
			"count":      len(workspaces),
		},
	})
}

// GetWorkspace handles GET /api/v1/workspaces/:id
// @Summary Get workspace details
// @Description Retrieve one workspace record by ID
// @Tags Workspaces
// @Security BearerAuth
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} models.APIResponse "Workspace retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Not the workspace owner"
// @Failure 404 {object} models.APIResponse "Not Found - Workspace does not exist"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Lookup failed"
// @Router /workspaces/{id} [get]
func (h *WorkspaceController) GetWorkspace(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondMissingClaims(c)
		return
	}

	workspace, err := h.workspaces.GetWorkspace(c.Request.Context(), c.Param("id"), claims)
	if err != nil {
		h.respondWorkspaceError(c, err, "Failed to get workspace")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Workspace retrieved successfully",
		Data:    workspace,
	})
}

// DeleteWorkspace handles DELETE /api/v1/workspaces/:id
// @Summary Delete a workspace
// @Description Remove one workspace record by ID
// @Tags Workspaces
// @Security BearerAuth
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} models.APIResponse "Workspace deleted successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Not the workspace owner"
// @Failure 404 {object} models.APIResponse "Not Found - Workspace does not exist"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Deletion failed"
// @Router /workspaces/{id} [delete]
func (h *WorkspaceController) DeleteWorkspace(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondMissingClaims(c)
		return
	}

	if err := h.workspaces.DeleteWorkspace(c.Request.Context(), c.Param("id"), claims); err != nil {
		h.respondWorkspaceError(c, err, "Failed to delete workspace")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Workspace deleted successfully",
	})
}

// GetSandboxState handles GET /api/v1/workspaces/:id/state
// @Summary Get sandbox state
// @Description Report whether the workspace's sandbox is currently running
// @Tags Workspaces
// @Security BearerAuth
// @Produce json
// @Param id path string true "Sandbox ID"
// @Success 200 {object} models.APIResponse "Sandbox state retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Not the workspace owner"
// @Failure 404 {object} models.APIResponse "Not Found - No workspace for this sandbox"
// @Failure 500 {object} models.APIResponse "Internal Server Error - State lookup failed"
// @Router /workspaces/{id}/state [get]
func (h *WorkspaceController) GetSandboxState(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondMissingClaims(c)
		return
	}

	handle, err := h.workspaces.Authorize(c.Request.Context(), c.Param("id"), claims)
	if err != nil {
		h.respondWorkspaceError(c, err, "Failed to resolve workspace")
		return
	}

	state, err := h.sandboxes.GetState(c.Request.Context(), handle.SandboxID)
	if err != nil {
		h.logger.Errorf("Failed to get state of sandbox %s: %v", handle.SandboxID, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to get sandbox state",
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
		Message: "Sandbox state retrieved successfully",
		Data: models.SandboxStateResponse{
			SandboxID: handle.SandboxID,
			State:     state,
		},
	})
}

// respondWorkspaceError maps workspace lookup failures onto the envelope.
func (h *WorkspaceController) respondWorkspaceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Workspace not found",
			Error: &models.APIError{
				Type:    "NotFoundError",
				Details: err.Error(),
			},
		})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Not authorized for this workspace",
			Error: &models.APIError{
				Type:    "Unauthorized",
				Details: err.Error(),
			},
		})
	case errors.Is(err, models.ErrMissingConfiguration):
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Workspace record is incomplete",
			Error: &models.APIError{
				Type:    "MissingConfiguration",
				Details: err.Error(),
			},
		})
	default:
		h.logger.Errorf("%s: %v", message, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: message,
			Error: &models.APIError{
				Type:    "DatabaseError",
				Details: err.Error(),
			},
		})
	}
}
