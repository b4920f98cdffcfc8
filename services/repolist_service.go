package services

import (
	"context"
	"fmt"
	"sandbay-backend/models"
	"sandbay-backend/sandbox"
	"sandbay-backend/utils"
	"strconv"
	"strings"
	"time"

	"sandbay-backend/utils/logger"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

// repoListFields are the gh projections we ask for
const repoListFields = "name,nameWithOwner,description,url,defaultBranchRef,visibility,isPrivate,updatedAt"

// RepoListService lists a user's GitHub repositories through the gh CLI.
// Concurrent listings for the same owner are collapsed into one CLI call.
type RepoListService struct {
	cliPath string
	limit   int
	timeout time.Duration
	runner  sandbox.CommandRunner
	logger  logger.Logger
	group   singleflight.Group
}

// NewRepoListService creates a new GitHub listing service
func NewRepoListService(cfg *models.Config, runner sandbox.CommandRunner, log logger.Logger) *RepoListService {
	limit := cfg.GitHubListLimit
	if limit <= 0 {
		limit = 100
	}

	return &RepoListService{
		cliPath: cfg.GitHubCLIPath,
		limit:   limit,
		timeout: cfg.GitHubListTimeout,
		runner:  runner,
		logger:  log,
	}
}

// ListRepositories returns the owner's repositories, newest activity first as
// reported by gh
func (s *RepoListService) ListRepositories(ctx context.Context, owner string) (*models.RepositoryListing, error) {
	v, err, shared := s.group.Do(owner, func() (interface{}, error) {
		return s.fetch(ctx, owner)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debugf("GitHub listing for %s shared across concurrent callers", owner)
	}

	return v.(*models.RepositoryListing), nil
}

func (s *RepoListService) fetch(ctx context.Context, owner string) (*models.RepositoryListing, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.runner.Run(ctx, s.cliPath,
		"repo", "list", owner,
		"--limit", strconv.Itoa(s.limit),
		"--json", repoListFields)
	if err != nil {
		return nil, fmt.Errorf("github listing: %w", err)
	}

	if !result.Success() {
		detail := strings.TrimSpace(result.Output)
		if strings.Contains(detail, "Could not resolve") {
			return nil, fmt.Errorf("github owner %s: %w", owner, models.ErrNotFound)
		}
		return nil, fmt.Errorf("gh repo list exited with code %d: %s", result.ExitCode, utils.Truncate(detail, 500))
	}

	parsed := gjson.Parse(result.Output)
	repos := make([]models.GitHubRepository, 0)

	parsed.ForEach(func(_, value gjson.Result) bool {
		repo := models.GitHubRepository{
			Name:          value.Get("name").String(),
			FullName:      value.Get("nameWithOwner").String(),
			Description:   value.Get("description").String(),
			URL:           value.Get("url").String(),
			DefaultBranch: value.Get("defaultBranchRef.name").String(),
			Visibility:    strings.ToLower(value.Get("visibility").String()),
			IsPrivate:     value.Get("isPrivate").Bool(),
		}
		if ts := value.Get("updatedAt").String(); ts != "" {
			if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
				repo.UpdatedAt = t
			}
		}
		repos = append(repos, repo)
		return true
	})

	s.logger.Debugf("Listed %d repositories for %s", len(repos), owner)
	return &models.RepositoryListing{
		Owner:        owner,
		Repositories: repos,
		Count:        len(repos),
	}, nil
}
