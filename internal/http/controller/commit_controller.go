package controller

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/entity"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model"
)

const indexTitle = template.HTML("GitHub Commits &mdash; FullTimeForce Test")

// CommitLister is the use case behind the index page.
type CommitLister interface {
	ListCommits(ctx context.Context) ([]entity.Commit, error)
}

// PageRenderer writes a named page. view.Renderer satisfies it.
type PageRenderer interface {
	Render(w io.Writer, page string, data any) error
}

type CommitController struct {
	log           *logrus.Logger
	commitUsecase CommitLister
	renderer      PageRenderer
	owner         string
	repo          string
}

func NewCommitController(log *logrus.Logger, commitUsecase CommitLister, renderer PageRenderer,
	owner, repo string) *CommitController {
	return &CommitController{
		log:           log,
		commitUsecase: commitUsecase,
		renderer:      renderer,
		owner:         owner,
		repo:          repo,
	}
}

// Index renders the commit list. The page is rendered into a buffer first so a
// template failure still yields a JSON error instead of a half-written page.
func (c *CommitController) Index(w http.ResponseWriter, r *http.Request) error {
	commits, err := c.commitUsecase.ListCommits(r.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.renderer.Render(&buf, "index.html", model.IndexPage{
		Title:   indexTitle,
		Owner:   c.owner,
		Repo:    c.repo,
		Commits: commits,
	}); err != nil {
		return err
	}

	c.log.WithField("commit_count", len(commits)).Debug("Rendered commit list")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		// Headers are gone; the client most likely hung up.
		c.log.WithError(err).Warn("Error writing response")
	}
	return nil
}
