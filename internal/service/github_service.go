package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/apperror"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/entity"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model/converter"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/schema"
)

// maxErrorBody caps how much of a failed upstream response is kept.
const maxErrorBody = 4 << 10

// GitHubConfig holds the settings needed to reach the commits endpoint.
type GitHubConfig struct {
	APIURL string
	Owner  string
	Repo   string
	Token  string
}

// Breaker guards the upstream call. utils.CircuitBreakerWrapper satisfies it.
type Breaker interface {
	Execute(fn func() (any, error)) (any, error)
}

// UpstreamError is a non-2xx answer from the hosting API.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream responded %s", e.Status)
	}
	return fmt.Sprintf("upstream responded %s: %s", e.Status, e.Body)
}

type GitHubService struct {
	cfg     GitHubConfig
	client  *http.Client
	log     *logrus.Logger
	breaker Breaker
}

// NewGitHubService checks that every setting is defined. It never touches the
// network, so a missing setting fails before any request is made.
func NewGitHubService(cfg GitHubConfig, client *http.Client, log *logrus.Logger) (*GitHubService, error) {
	required := []struct {
		key   string
		value string
	}{
		{"GITHUB_API_URL", cfg.APIURL},
		{"GITHUB_REPO", cfg.Repo},
		{"GITHUB_OWNER", cfg.Owner},
		{"ACCESS_TOKEN", cfg.Token},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, apperror.Newf(http.StatusInternalServerError, "%s is undefined", r.key)
		}
	}

	if client == nil {
		client = http.DefaultClient
	}
	return &GitHubService{cfg: cfg, client: client, log: log}, nil
}

// WithBreaker routes every call through b.
func (s *GitHubService) WithBreaker(b Breaker) *GitHubService {
	s.breaker = b
	return s
}

// ListCommits fetches the first page of commits for the configured repository.
// Elements keep the upstream order; one malformed element fails the whole call.
func (s *GitHubService) ListCommits(ctx context.Context) ([]entity.Commit, error) {
	if s.breaker == nil {
		return s.listCommits(ctx)
	}
	result, err := s.breaker.Execute(func() (any, error) {
		return s.listCommits(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]entity.Commit), nil
}

func (s *GitHubService) listCommits(ctx context.Context) ([]entity.Commit, error) {
	endpoint := s.commitsURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", endpoint)
	}
	req.Header.Set("Authorization", s.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/vnd.github+json")

	s.log.WithFields(logrus.Fields{
		"owner": s.cfg.Owner,
		"repo":  s.cfg.Repo,
		"url":   endpoint,
	}).Debug("Fetching commits")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read commits response")
	}
	return decodeCommits(body)
}

func (s *GitHubService) commitsURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/commits",
		strings.TrimRight(s.cfg.APIURL, "/"),
		url.PathEscape(s.cfg.Owner),
		url.PathEscape(s.cfg.Repo))
}

func decodeCommits(body []byte) ([]entity.Commit, error) {
	elements, err := schema.Decode[[]json.RawMessage](body)
	if err != nil {
		return nil, errors.Wrap(err, "decode commits response")
	}
	if elements == nil {
		return nil, errors.New("decode commits response: expected an array but got null")
	}

	commits := make([]entity.Commit, 0, len(elements))
	for i, raw := range elements {
		payload, err := schema.Decode[model.CommitPayload](raw)
		if err != nil {
			return nil, errors.Wrapf(err, "commit %d", i)
		}
		commits = append(commits, converter.CommitToEntity(&payload))
	}
	return commits, nil
}
