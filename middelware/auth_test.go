package middelware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sandbay-backend/models"
	"sandbay-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Fatal(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

// MockUserRepository implements the user repository interface for testing
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepositoryInterface = (*MockUserRepository)(nil)

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AuthMiddlewareTestSuite defines a test suite for auth middleware functions
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctx        context.Context
	config     *models.Config
	mockLogger *MockLogger
	jwtManager *JWTManager
	router     *gin.Engine
	user       *models.User
}

// SetupTest runs before each test
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctx = context.Background()
	suite.config = &models.Config{
		AppName:      "Sandbay Backend",
		JWTSecret:    "test-secret-key-for-testing",
		JWTExpiresIn: 24 * time.Hour,
	}

	suite.mockLogger = &MockLogger{}

	// Mock all logger calls that might be made
	suite.mockLogger.On("Info", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	suite.mockLogger.On("Debug", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	suite.mockLogger.On("Error", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	suite.mockLogger.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	suite.mockLogger.On("Warn", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()

	// UserRepo nil skips database cross-verification for pure JWT tests
	suite.jwtManager = &JWTManager{
		Config:            suite.config,
		Logger:            suite.mockLogger,
		UserRepo:          nil,
		BlacklistedTokens: make(map[string]time.Time),
	}

	suite.user = &models.User{
		ID:       "user-123",
		Email:    "dev@example.com",
		Username: "jane_dev",
		Role:     models.UserRoleUser,
		Status:   models.UserStatusActive,
	}

	suite.router = gin.New()
	suite.router.Use(gin.Recovery())
}

// TestNewJWTManager tests the NewJWTManager function
func (suite *AuthMiddlewareTestSuite) TestNewJWTManager() {
	manager := NewJWTManager(suite.config, suite.mockLogger, nil)

	assert.NotNil(suite.T(), manager)
	assert.Equal(suite.T(), suite.config, manager.Config)
	assert.Equal(suite.T(), suite.mockLogger, manager.Logger)
	assert.NotNil(suite.T(), manager.BlacklistedTokens)
}

// TestGenerateToken tests the GenerateToken function
func (suite *AuthMiddlewareTestSuite) TestGenerateToken() {
	token, err := suite.jwtManager.GenerateToken(suite.user)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
}

// TestGenerateAndValidateToken tests a full token round trip
func (suite *AuthMiddlewareTestSuite) TestGenerateAndValidateToken() {
	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-123", claims.UserID)
	assert.Equal(suite.T(), "dev@example.com", claims.Email)
	assert.Equal(suite.T(), "jane_dev", claims.Username)
	assert.Equal(suite.T(), models.UserRoleUser, claims.Role)
	assert.Equal(suite.T(), models.UserStatusActive, claims.Status)
	assert.NotEmpty(suite.T(), claims.ID)
	assert.Equal(suite.T(), "Sandbay Backend", claims.Issuer)
}

// TestValidateTokenExpired tests rejection of an expired token
func (suite *AuthMiddlewareTestSuite) TestValidateTokenExpired() {
	expiredConfig := &models.Config{
		AppName:      "Sandbay Backend",
		JWTSecret:    suite.config.JWTSecret,
		JWTExpiresIn: -1 * time.Hour,
	}
	expiredManager := &JWTManager{
		Config:            expiredConfig,
		Logger:            suite.mockLogger,
		BlacklistedTokens: make(map[string]time.Time),
	}

	token, err := expiredManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Contains(suite.T(), err.Error(), "expired")
}

// TestValidateTokenWrongSecret tests rejection of a token signed elsewhere
func (suite *AuthMiddlewareTestSuite) TestValidateTokenWrongSecret() {
	otherManager := &JWTManager{
		Config: &models.Config{
			AppName:      "Sandbay Backend",
			JWTSecret:    "a-completely-different-secret",
			JWTExpiresIn: time.Hour,
		},
		Logger:            suite.mockLogger,
		BlacklistedTokens: make(map[string]time.Time),
	}

	token, err := otherManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateTokenMalformed tests rejection of garbage input
func (suite *AuthMiddlewareTestSuite) TestValidateTokenMalformed() {
	claims, err := suite.jwtManager.ValidateToken(suite.ctx, "not-a-token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateTokenRejectsUnsignedAlgorithm tests the signing method guard
func (suite *AuthMiddlewareTestSuite) TestValidateTokenRejectsUnsignedAlgorithm() {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, models.JWTClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.Require().NoError(err)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Contains(suite.T(), err.Error(), "signing method")
}

// TestValidateTokenRevoked tests the blacklist check
func (suite *AuthMiddlewareTestSuite) TestValidateTokenRevoked() {
	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)
	suite.Require().NoError(err)

	suite.jwtManager.RevokeToken(claims.ID, time.Now().Add(time.Hour))

	revoked, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), revoked)
	assert.Contains(suite.T(), err.Error(), "revoked")
}

// TestCleanupExpiredTokens tests blacklist housekeeping
func (suite *AuthMiddlewareTestSuite) TestCleanupExpiredTokens() {
	suite.jwtManager.BlacklistedTokens["stale"] = time.Now().Add(-time.Hour)
	suite.jwtManager.BlacklistedTokens["live"] = time.Now().Add(time.Hour)

	suite.jwtManager.CleanupExpiredTokens()

	assert.Len(suite.T(), suite.jwtManager.BlacklistedTokens, 1)
	assert.Contains(suite.T(), suite.jwtManager.BlacklistedTokens, "live")
}

// TestValidateTokenCrossVerifiesUser tests the database check on validation
func (suite *AuthMiddlewareTestSuite) TestValidateTokenCrossVerifiesUser() {
	mockRepo := &MockUserRepository{}
	suite.jwtManager.UserRepo = mockRepo

	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	mockRepo.On("GetUserByID", mock.Anything, "user-123").Return(suite.user, nil)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-123", claims.UserID)
	mockRepo.AssertExpectations(suite.T())
}

// TestValidateTokenRejectsSuspendedUser tests that a token outlives its account
func (suite *AuthMiddlewareTestSuite) TestValidateTokenRejectsSuspendedUser() {
	mockRepo := &MockUserRepository{}
	suite.jwtManager.UserRepo = mockRepo

	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	suspended := *suite.user
	suspended.Status = models.UserStatusSuspended
	mockRepo.On("GetUserByID", mock.Anything, "user-123").Return(&suspended, nil)

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Contains(suite.T(), err.Error(), "suspended")
}

// TestValidateTokenUserLookupFailure tests a database outage during validation
func (suite *AuthMiddlewareTestSuite) TestValidateTokenUserLookupFailure() {
	mockRepo := &MockUserRepository{}
	suite.jwtManager.UserRepo = mockRepo

	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	mockRepo.On("GetUserByID", mock.Anything, "user-123").Return(nil, errors.New("dynamodb unavailable"))

	claims, err := suite.jwtManager.ValidateToken(suite.ctx, token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Contains(suite.T(), err.Error(), "user verification failed")
}

// TestAuthMiddlewareMissingHeader tests a request without credentials
func (suite *AuthMiddlewareTestSuite) TestAuthMiddlewareMissingHeader() {
	suite.router.GET("/protected", suite.jwtManager.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	var response models.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "error", response.Status)
	assert.Equal(suite.T(), "Missing Authorization header", response.Message)
}

// TestAuthMiddlewareInvalidFormat tests a non-Bearer Authorization header
func (suite *AuthMiddlewareTestSuite) TestAuthMiddlewareInvalidFormat() {
	suite.router.GET("/protected", suite.jwtManager.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	var response models.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Invalid Authorization header format", response.Message)
}

// TestAuthMiddlewareValidToken tests that a valid token reaches the handler
// with the caller identity in context
func (suite *AuthMiddlewareTestSuite) TestAuthMiddlewareValidToken() {
	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	suite.router.GET("/protected", suite.jwtManager.AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		claims, _ := c.Get("jwt_claims")
		assert.Equal(suite.T(), "user-123", userID)
		assert.NotNil(suite.T(), claims)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "user-123")
}

// TestRequireRoleAllowsMatchingRole tests the role gate with an admin token
func (suite *AuthMiddlewareTestSuite) TestRequireRoleAllowsMatchingRole() {
	admin := *suite.user
	admin.Role = models.UserRoleAdmin
	token, err := suite.jwtManager.GenerateToken(&admin)
	suite.Require().NoError(err)

	suite.router.GET("/admin", suite.jwtManager.AuthMiddleware(), suite.jwtManager.RequireRole(models.UserRoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestRequireRoleRejectsOtherRole tests the role gate with a regular user token
func (suite *AuthMiddlewareTestSuite) TestRequireRoleRejectsOtherRole() {
	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	suite.router.GET("/admin", suite.jwtManager.AuthMiddleware(), suite.jwtManager.RequireRole(models.UserRoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var response models.APIResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AuthorizationError", response.Error.Type)
}

// TestValidateTokenEndpoint tests the token validation endpoint
func (suite *AuthMiddlewareTestSuite) TestValidateTokenEndpoint() {
	token, err := suite.jwtManager.GenerateToken(suite.user)
	suite.Require().NoError(err)

	suite.router.POST("/auth/validate", suite.jwtManager.ValidateTokenEndpoint)

	body, _ := json.Marshal(TokenValidationRequest{Token: token})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/validate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.APIResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "success", response.Status)

	data := response.Data.(map[string]interface{})
	assert.Equal(suite.T(), true, data["valid"])
	assert.Equal(suite.T(), "user-123", data["user_id"])
}

// TestValidateTokenEndpointBadBody tests the endpoint with a missing token field
func (suite *AuthMiddlewareTestSuite) TestValidateTokenEndpointBadBody() {
	suite.router.POST("/auth/validate", suite.jwtManager.ValidateTokenEndpoint)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/validate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestValidateTokenEndpointInvalidToken tests the endpoint with a bad token
func (suite *AuthMiddlewareTestSuite) TestValidateTokenEndpointInvalidToken() {
	suite.router.POST("/auth/validate", suite.jwtManager.ValidateTokenEndpoint)

	body, _ := json.Marshal(TokenValidationRequest{Token: "garbage"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/validate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// Run the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
