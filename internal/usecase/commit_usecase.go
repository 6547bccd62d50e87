package usecase

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/entity"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/service"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/utils"
)

type CommitUsecase struct {
	Log     *logrus.Logger
	Config  service.GitHubConfig
	Client  *http.Client
	Breaker service.Breaker
}

func NewCommitUsecase(log *logrus.Logger, cfg service.GitHubConfig, client *http.Client,
	breaker service.Breaker) *CommitUsecase {
	return &CommitUsecase{
		Log:     log,
		Config:  cfg,
		Client:  client,
		Breaker: breaker,
	}
}

// ListCommits builds a fresh upstream client and fetches the commit list.
func (c *CommitUsecase) ListCommits(ctx context.Context) ([]entity.Commit, error) {
	timer := utils.NewOperationTimer("list_commits", c.Log)

	svc, err := service.NewGitHubService(c.Config, c.Client, c.Log)
	if err != nil {
		c.Log.WithError(err).Error("GitHub client is not configured")
		return nil, err
	}
	if c.Breaker != nil {
		svc.WithBreaker(c.Breaker)
	}

	start := timer.StartFetch()
	commits, err := svc.ListCommits(ctx)
	timer.EndFetch(start)
	if err != nil {
		c.Log.WithError(err).WithFields(logrus.Fields{
			"owner": c.Config.Owner,
			"repo":  c.Config.Repo,
		}).Error("Error fetching commits")
		return nil, err
	}

	timer.End(logrus.Fields{"commit_count": len(commits)})
	return commits, nil
}
