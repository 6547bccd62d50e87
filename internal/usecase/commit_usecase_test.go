package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/apperror"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/service"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/testutil"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/usecase"
)

func TestCommitUsecase_ListCommits(t *testing.T) {
	body := testutil.Marshal(t, []any{testutil.Commit("abc123", "fix bug")})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	log, hook := test.NewNullLogger()
	uc := usecase.NewCommitUsecase(log, service.GitHubConfig{
		APIURL: srv.URL, Owner: "octo", Repo: "demo", Token: "t",
	}, srv.Client(), nil)

	commits, err := uc.ListCommits(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc123", commits[0].SHA)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Operation completed", last.Message)
	assert.Equal(t, 1, last.Data["commit_count"])
}

func TestCommitUsecase_MissingConfig(t *testing.T) {
	log, hook := test.NewNullLogger()
	uc := usecase.NewCommitUsecase(log, service.GitHubConfig{}, nil, nil)

	_, err := uc.ListCommits(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(err))
	assert.Equal(t, "GITHUB_API_URL is undefined", err.Error())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
