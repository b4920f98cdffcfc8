package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sandbay-backend/models"
	"sandbay-backend/utils"

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

// MockUserRepository implements the UserRepositoryInterface for testing
type MockUserRepository struct {
	mock.Mock
}

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

// MockTokenGenerator implements the TokenGenerator interface for testing
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

// UserServiceTestSuite defines a test suite for UserService functions
type UserServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockRepo    *MockUserRepository
	mockTokens  *MockTokenGenerator
	mockLogger  *MockLogger
	userService *UserService
	user        *models.User
}

// SetupTest runs before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = &MockUserRepository{}
	suite.mockTokens = &MockTokenGenerator{}
	suite.mockLogger = &MockLogger{}

	// Mock logger calls that might be made
	suite.mockLogger.On("Debug", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	suite.mockLogger.On("Info", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	suite.mockLogger.On("Error", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	suite.mockLogger.On("Warn", mock.Anything).Return().Maybe()
	suite.mockLogger.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()

	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)

	suite.user = &models.User{
		ID:           "user-1",
		Email:        "dev@example.com",
		Username:     "jane_dev",
		PasswordHash: hash,
		Role:         models.UserRoleUser,
		Status:       models.UserStatusActive,
		CreatedAt:    time.Now(),
	}

	config := &models.Config{JWTExpiresIn: 30 * time.Minute}
	suite.userService = NewUserService(suite.mockRepo, suite.mockTokens, config, suite.mockLogger)
}

// TearDownTest runs after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTokens.AssertExpectations(suite.T())
}

// TestRegister tests registration with valid input
func (suite *UserServiceTestSuite) TestRegister() {
	req := &models.RegisterUser{
		Email:    "dev@example.com",
		Username: "jane_dev",
		Password: "password123",
	}

	suite.mockRepo.On("CreateUser", suite.ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "dev@example.com" &&
			u.Username == "jane_dev" &&
			u.Role == models.UserRoleUser &&
			u.PasswordHash != "" &&
			u.PasswordHash != "password123"
	})).Return(suite.user, nil)

	created, err := suite.userService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", created.ID)
	assert.Equal(suite.T(), "dev@example.com", created.Email)
}

// TestRegisterDuplicateEmail tests that repository conflicts propagate
func (suite *UserServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &models.RegisterUser{
		Email:    "dev@example.com",
		Username: "jane_dev",
		Password: "password123",
	}

	suite.mockRepo.On("CreateUser", suite.ctx, mock.Anything).
		Return(nil, fmt.Errorf("user with email dev@example.com: %w", models.ErrAlreadyExists))

	created, err := suite.userService.Register(suite.ctx, req)

	assert.Nil(suite.T(), created)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)
}

// TestLogin tests credential authentication with valid credentials
func (suite *UserServiceTestSuite) TestLogin() {
	req := &models.LoginRequest{Email: "dev@example.com", Password: "password123"}

	suite.mockRepo.On("GetUserByEmail", suite.ctx, "dev@example.com").Return(suite.user, nil)
	suite.mockTokens.On("GenerateToken", suite.user).Return("signed-token", nil)
	suite.mockRepo.On("UpdateLastLogin", suite.ctx, "user-1").Return(nil)

	response, err := suite.userService.Login(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "signed-token", response.AccessToken)
	assert.Equal(suite.T(), "Bearer", response.TokenType)
	assert.Equal(suite.T(), int64(1800), response.ExpiresIn)
	assert.Equal(suite.T(), "user-1", response.User.ID)
}

// TestLoginWrongPassword tests rejection of a bad password
func (suite *UserServiceTestSuite) TestLoginWrongPassword() {
	req := &models.LoginRequest{Email: "dev@example.com", Password: "not-the-password"}

	suite.mockRepo.On("GetUserByEmail", suite.ctx, "dev@example.com").Return(suite.user, nil)

	response, err := suite.userService.Login(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, models.ErrUnauthorized)
	assert.Contains(suite.T(), err.Error(), "invalid email or password")
	suite.mockTokens.AssertNotCalled(suite.T(), "GenerateToken", mock.Anything)
}

// TestLoginUnknownEmail tests that an unknown email is indistinguishable
// from a wrong password
func (suite *UserServiceTestSuite) TestLoginUnknownEmail() {
	req := &models.LoginRequest{Email: "nobody@example.com", Password: "password123"}

	suite.mockRepo.On("GetUserByEmail", suite.ctx, "nobody@example.com").
		Return(nil, fmt.Errorf("user nobody@example.com: %w", models.ErrNotFound))

	response, err := suite.userService.Login(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, models.ErrUnauthorized)
	assert.Contains(suite.T(), err.Error(), "invalid email or password")
}

// TestLoginSuspendedAccount tests rejection of a non-active account
func (suite *UserServiceTestSuite) TestLoginSuspendedAccount() {
	suite.user.Status = models.UserStatusSuspended
	req := &models.LoginRequest{Email: "dev@example.com", Password: "password123"}

	suite.mockRepo.On("GetUserByEmail", suite.ctx, "dev@example.com").Return(suite.user, nil)

	response, err := suite.userService.Login(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, models.ErrUnauthorized)
	assert.Contains(suite.T(), err.Error(), "suspended")
}

// TestLoginTokenGenerationFailure tests that signing failures propagate
func (suite *UserServiceTestSuite) TestLoginTokenGenerationFailure() {
	req := &models.LoginRequest{Email: "dev@example.com", Password: "password123"}

	suite.mockRepo.On("GetUserByEmail", suite.ctx, "dev@example.com").Return(suite.user, nil)
	suite.mockTokens.On("GenerateToken", suite.user).Return("", errors.New("signing key unavailable"))

	response, err := suite.userService.Login(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
}

// TestLoginLastLoginBestEffort tests that a failed last-login update does not
// fail the login
func (suite *UserServiceTestSuite) TestLoginLastLoginBestEffort() {
	req := &models.LoginRequest{Email: "dev@example.com", Password: "password123"}

	suite.mockRepo.On("GetUserByEmail", suite.ctx, "dev@example.com").Return(suite.user, nil)
	suite.mockTokens.On("GenerateToken", suite.user).Return("signed-token", nil)
	suite.mockRepo.On("UpdateLastLogin", suite.ctx, "user-1").Return(errors.New("throttled"))

	response, err := suite.userService.Login(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "signed-token", response.AccessToken)
}

// TestGetUserByID tests the lookup passthrough
func (suite *UserServiceTestSuite) TestGetUserByID() {
	suite.mockRepo.On("GetUserByID", suite.ctx, "user-1").Return(suite.user, nil)

	user, err := suite.userService.GetUserByID(suite.ctx, "user-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane_dev", user.Username)
}

// Run the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
