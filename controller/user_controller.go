package controller

import (
	"context"
	"errors"
	"net/http"
	"sandbay-backend/middelware"
	"sandbay-backend/models"
	"sandbay-backend/services"
	"sandbay-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	ctx        context.Context
	users      services.UserServiceInterface
	jwtManager *middelware.JWTManager
	logger     logger.Logger
}

func NewUserController(ctx context.Context, users services.UserServiceInterface, logger logger.Logger, jwtManager *middelware.JWTManager) *UserController {
	return &UserController{
		ctx:        ctx,
		users:      users,
		logger:     logger,
		jwtManager: jwtManager,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new user
// @Description Create a new user account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterUser true "Registration request"
// @Success 201 {object} models.APIResponse "User registered successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid registration data"
// @Failure 409 {object} models.APIResponse "Conflict - User already exists"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Registration failed"
// @Router /auth/register [post]
func (h *UserController) Register(c *gin.Context) {
	var req models.RegisterUser
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

	user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, models.APIResponse{
				Status:  "error",
				Code:    http.StatusConflict,
				Message: "User already exists",
				Error: &models.APIError{
					Type:    "ConflictError",
					Details: "An account with this email or username already exists",
				},
			})
			return
		}

		h.logger.Errorf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to create user",
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
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /api/v1/auth/login
// @Summary Authenticate a user
// @Description Exchange email and password for a Bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse "Login successful"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid login payload"
// @Failure 401 {object} models.APIResponse "Unauthorized - Invalid credentials"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Login failed"
// @Router /auth/login [post]
func (h *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
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

	token, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Login failed",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: err.Error(),
				},
			})
			return
		}

		h.logger.Errorf("Failed to log in user: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Login failed",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Login successful",
		Data:    token,
	})
}

// Me handles GET /api/v1/auth/me
// @Summary Get the authenticated user
// @Description Retrieve the account behind the presented Bearer token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "User details retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Failure 404 {object} models.APIResponse "Not Found - User does not exist"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Failed to retrieve user"
// @Router /auth/me [get]
func (h *UserController) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Status:  "error",
				Code:    http.StatusNotFound,
				Message: "User not found",
				Error: &models.APIError{
					Type:    "NotFoundError",
					Details: err.Error(),
				},
			})
			return
		}

		h.logger.Errorf("Failed to get user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to get user",
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
		Message: "User details retrieved successfully",
		Data:    user,
	})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out the authenticated user
// @Description Revoke the presented Bearer token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Logged out successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Authentication required"
// @Router /auth/logout [post]
func (h *UserController) Logout(c *gin.Context) {
	claimsValue, exists := c.Get("jwt_claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: "No token claims in request context",
			},
		})
		return
	}

	claims := claimsValue.(*models.JWTClaims)
	h.jwtManager.RevokeToken(claims.ID, claims.ExpiresAt.Time)
	h.logger.Infof("User %s logged out, token %s revoked", claims.UserID, claims.ID)

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Logged out successfully",
	})
}

// ValidateToken handles POST /api/v1/auth/validate
// @Summary Validate a token
// @Description Check whether a Bearer token is valid and return its claims
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body middelware.TokenValidationRequest true "Token to validate"
// @Success 200 {object} models.APIResponse "Token is valid"
// @Failure 400 {object} models.APIResponse "Bad Request - Missing token"
// @Failure 401 {object} models.APIResponse "Unauthorized - Invalid or expired token"
// @Router /auth/validate [post]
func (h *UserController) ValidateToken(c *gin.Context) {
	h.jwtManager.ValidateTokenEndpoint(c)
}
