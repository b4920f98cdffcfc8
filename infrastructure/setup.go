package infrastructure

import (
	"context"
	"fmt"
	"sandbay-backend/dal"
	"sandbay-backend/models"
	"sandbay-backend/utils/logger"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	createRetries      = 3
	createRetryDelay   = 2 * time.Second
	activePollInterval = 2 * time.Second
	activeWaitTimeout  = 2 * time.Minute
)

// Setup creates the DynamoDB tables the application depends on. It is run
// once at startup and is safe to run concurrently with another instance
// doing the same.
type Setup struct {
	config *models.Config
	db     dal.DatabaseClientInterface
	logger logger.Logger
}

// NewSetup creates a new infrastructure setup handler
func NewSetup(cfg *models.Config, db dal.DatabaseClientInterface, log logger.Logger) *Setup {
	return &Setup{
		config: cfg,
		db:     db,
		logger: log,
	}
}

// EnsureTables creates every configured table that does not exist yet and
// waits for each to become active.
func (s *Setup) EnsureTables(ctx context.Context) error {
	s.logger.Infof("Ensuring %d tables exist", len(s.config.Tables))

	for _, name := range s.config.Tables {
		tableName := s.config.DynamoDBTablePrefix + "_" + name
		if err := s.ensureTable(ctx, tableName); err != nil {
			return fmt.Errorf("failed to ensure table %s: %w", tableName, err)
		}
	}

	s.logger.Info("All tables are active")
	return nil
}

func (s *Setup) ensureTable(ctx context.Context, tableName string) error {
	if _, err := s.db.DescribeTable(ctx, tableName); err == nil {
		s.logger.Debugf("Table %s already exists", tableName)
		return nil
	} else if !dal.IsResourceNotFound(err) {
		return err
	}

	input, err := GetTables(tableName)
	if err != nil {
		return err
	}

	if err := s.createTableWithRetry(ctx, tableName, input); err != nil {
		return err
	}

	return s.waitForActive(ctx, tableName)
}

func (s *Setup) createTableWithRetry(ctx context.Context, tableName string, input *dynamodb.CreateTableInput) error {
	var err error
	delay := createRetryDelay
	for attempt := 1; attempt <= createRetries; attempt++ {
		s.logger.Infof("Creating table %s (attempt %d/%d)", tableName, attempt, createRetries)

		err = s.db.CreateTable(ctx, input)
		if err == nil {
			return nil
		}

		// Another instance won the race; treat the table as created
		if dal.IsResourceInUse(err) {
			s.logger.Debugf("Table %s is being created elsewhere", tableName)
			return nil
		}

		if !dal.IsThrottled(err) {
			return err
		}

		s.logger.Warnf("Table creation throttled, retrying in %s", delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("failed to create table %s after %d attempts: %w", tableName, createRetries, err)
}

// waitForActive polls until the table reports ACTIVE
func (s *Setup) waitForActive(ctx context.Context, tableName string) error {
	deadline := time.Now().Add(activeWaitTimeout)

	for time.Now().Before(deadline) {
		out, err := s.db.DescribeTable(ctx, tableName)
		if err == nil && out.Table != nil && out.Table.TableStatus == types.TableStatusActive {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(activePollInterval):
		}
	}

	return fmt.Errorf("table %s did not become active within %s", tableName, activeWaitTimeout)
}
