package sandbox

import (
	"context"
	"errors"
	"sandbay-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRunner implements CommandRunner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (*models.ExecResult, error) {
	callArgs := m.Called(ctx, name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*models.ExecResult), callArgs.Error(1)
}

type noopLogger struct{}

func (noopLogger) Debug(args ...interface{})                 {}
func (noopLogger) Info(args ...interface{})                  {}
func (noopLogger) Warn(args ...interface{})                  {}
func (noopLogger) Error(args ...interface{})                 {}
func (noopLogger) Fatal(args ...interface{})                 {}
func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (noopLogger) Fatalf(format string, args ...interface{}) {}

// CLIClientTestSuite defines a test suite for the provider CLI client
type CLIClientTestSuite struct {
	suite.Suite
	mockRunner *MockRunner
	client     *CLIClient
}

// SetupTest runs before each test
func (suite *CLIClientTestSuite) SetupTest() {
	suite.mockRunner = &MockRunner{}
	cfg := &models.Config{
		ProviderBinary:      "sandbayd",
		ProviderExecTimeout: 30 * time.Second,
	}
	suite.client = NewCLIClient(cfg, suite.mockRunner, noopLogger{})
}

// TearDownTest runs after each test
func (suite *CLIClientTestSuite) TearDownTest() {
	suite.mockRunner.AssertExpectations(suite.T())
}

// TestStateRunning tests parsing a running sandbox
func (suite *CLIClientTestSuite) TestStateRunning() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"status", "sbx-1", "--format", "json"}).
		Return(&models.ExecResult{ExitCode: 0, Output: `{"id":"sbx-1","state":"running","uptime":"2h"}`}, nil)

	state, err := suite.client.State(context.Background(), "sbx-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SandboxStateRunning, state)
}

// TestStateStopped tests parsing a stopped sandbox
func (suite *CLIClientTestSuite) TestStateStopped() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"status", "sbx-1", "--format", "json"}).
		Return(&models.ExecResult{ExitCode: 0, Output: `{"id":"sbx-1","state":"stopped"}`}, nil)

	state, err := suite.client.State(context.Background(), "sbx-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SandboxStateStopped, state)
}

// TestStateUnrecognized tests an unexpected provider payload
func (suite *CLIClientTestSuite) TestStateUnrecognized() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"status", "sbx-1", "--format", "json"}).
		Return(&models.ExecResult{ExitCode: 0, Output: `{"id":"sbx-1","state":"hibernating"}`}, nil)

	state, err := suite.client.State(context.Background(), "sbx-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SandboxStateUnknown, state)
}

// TestStateNonZeroExit tests a failing status command
func (suite *CLIClientTestSuite) TestStateNonZeroExit() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"status", "sbx-1", "--format", "json"}).
		Return(&models.ExecResult{ExitCode: 1, Output: "no such sandbox"}, nil)

	state, err := suite.client.State(context.Background(), "sbx-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.SandboxStateUnknown, state)
	assert.Contains(suite.T(), err.Error(), "no such sandbox")
}

// TestStateRunnerError tests an unreachable provider binary
func (suite *CLIClientTestSuite) TestStateRunnerError() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"status", "sbx-1", "--format", "json"}).
		Return(nil, errors.New("run sandbayd: executable file not found in $PATH"))

	state, err := suite.client.State(context.Background(), "sbx-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), models.SandboxStateUnknown, state)
}

// TestStart tests a clean start
func (suite *CLIClientTestSuite) TestStart() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"start", "sbx-1"}).
		Return(&models.ExecResult{ExitCode: 0}, nil)

	err := suite.client.Start(context.Background(), "sbx-1")
	assert.NoError(suite.T(), err)
}

// TestStartFailure tests a start rejected by the provider
func (suite *CLIClientTestSuite) TestStartFailure() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"start", "sbx-1"}).
		Return(&models.ExecResult{ExitCode: 2, Output: "quota exceeded"}, nil)

	err := suite.client.Start(context.Background(), "sbx-1")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "quota exceeded")
}

// TestStop tests a clean stop
func (suite *CLIClientTestSuite) TestStop() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd", []string{"stop", "sbx-1"}).
		Return(&models.ExecResult{ExitCode: 0}, nil)

	err := suite.client.Stop(context.Background(), "sbx-1")
	assert.NoError(suite.T(), err)
}

// TestExec tests command execution with working directory
func (suite *CLIClientTestSuite) TestExec() {
	expected := &models.ExecResult{ExitCode: 0, Output: "web: restarted"}
	suite.mockRunner.On("Run", mock.Anything, "sandbayd",
		[]string{"exec", "sbx-1", "--workdir", "/workspace/frontend", "--", "sh", "-c", "supervisorctl restart web"}).
		Return(expected, nil)

	result, err := suite.client.Exec(context.Background(), "sbx-1", "/workspace/frontend", "supervisorctl restart web")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.ExitCode)
	assert.Equal(suite.T(), "web: restarted", result.Output)
}

// TestExecNonZeroExit tests that command failure is a result, not an error
func (suite *CLIClientTestSuite) TestExecNonZeroExit() {
	suite.mockRunner.On("Run", mock.Anything, "sandbayd",
		[]string{"exec", "sbx-1", "--workdir", "/workspace/api", "--", "sh", "-c", "supervisorctl restart db"}).
		Return(&models.ExecResult{ExitCode: 7, Output: "db: ERROR (spawn error)"}, nil)

	result, err := suite.client.Exec(context.Background(), "sbx-1", "/workspace/api", "supervisorctl restart db")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success())
	assert.Equal(suite.T(), 7, result.ExitCode)
}

// TestExecAppliesTimeout tests that the exec context carries a deadline
func (suite *CLIClientTestSuite) TestExecAppliesTimeout() {
	suite.mockRunner.On("Run", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "sandbayd", mock.Anything).
		Return(&models.ExecResult{ExitCode: 0}, nil)

	_, err := suite.client.Exec(context.Background(), "sbx-1", "/workspace", "true")
	assert.NoError(suite.T(), err)
}

// Run the test suite
func TestCLIClientTestSuite(t *testing.T) {
	suite.Run(t, new(CLIClientTestSuite))
}
