package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/testutil"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		KeyPort, KeyGitHubAPIURL, KeyGitHubOwner, KeyGitHubRepo, KeyAccessToken,
		KeyLogLevel, KeyLogFormat, KeyLogFile, KeyExposeErrors, KeyBreakerEnabled,
		KeyBreakerMaxReq, KeyBreakerWindow, KeyBreakerTimeout, KeyHTTPTimeout, KeyConfigFile,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	chdir(t, t.TempDir())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyPort, "8080")
	t.Setenv(KeyGitHubAPIURL, "https://api.github.com")
	t.Setenv(KeyGitHubOwner, "octo")
	t.Setenv(KeyGitHubRepo, "demo")
	t.Setenv(KeyAccessToken, "token abc")
	t.Setenv(KeyBreakerEnabled, "true")
	t.Setenv(KeyHTTPTimeout, "5s")

	v, err := NewViper()
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, "octo", cfg.GitHub.Owner)
	assert.Equal(t, "demo", cfg.GitHub.Repo)
	assert.Equal(t, "token abc", cfg.GitHub.Token)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.ExposeErrors)
	assert.True(t, cfg.Breaker.Enabled)
	assert.Equal(t, uint32(3), cfg.Breaker.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.Breaker.Timeout)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_FromDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("PORT=3000\nGITHUB_OWNER=fromfile\nGITHUB_REPO=repo\n"), 0o600))
	t.Setenv(KeyGitHubOwner, "fromenv")

	v, err := NewViper()
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "fromenv", cfg.GitHub.Owner)
	assert.Equal(t, "repo", cfg.GitHub.Repo)
	assert.Empty(t, cfg.GitHub.Token)
}

func TestNewViper_ExplicitFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9000\n"), 0o600))
	t.Setenv(KeyConfigFile, path)

	v, err := NewViper()
	require.NoError(t, err)
	assert.Equal(t, "9000", v.GetString(KeyPort))

	t.Setenv(KeyConfigFile, filepath.Join(t.TempDir(), "missing.env"))
	_, err = NewViper()
	assert.Error(t, err)
}

func TestLoad_MissingPort(t *testing.T) {
	clearEnv(t)
	v, err := NewViper()
	require.NoError(t, err)

	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT is undefined")
}

func TestNewLogger(t *testing.T) {
	chdir(t, t.TempDir())

	logs, err := NewLogger(LogSettings{Level: "debug", Format: "text", File: filepath.Join("logs", "app.log")})
	require.NoError(t, err)
	defer logs.Close()

	assert.Equal(t, logrus.DebugLevel, logs.MainLogger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logs.CommitLogger.Formatter)

	logs.MainLogger.Info("hello file")
	data, err := os.ReadFile(filepath.Join("logs", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(LogSettings{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = NewLogger(LogSettings{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestBootstrap(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/demo/commits", r.URL.Path)
		_, _ = w.Write(testutil.Marshal(t, []any{testutil.Commit("abc123", "fix bug")}))
	}))
	defer upstream.Close()

	logs, err := NewLogger(LogSettings{Level: "error", Format: "json"})
	require.NoError(t, err)

	cfg := &AppConfig{Port: "0", Log: LogSettings{Level: "error"}}
	cfg.GitHub.APIURL = upstream.URL
	cfg.GitHub.Owner = "octo"
	cfg.GitHub.Repo = "demo"
	cfg.GitHub.Token = "t"
	cfg.Breaker.Enabled = true
	cfg.Breaker.MaxRequests = 1
	cfg.Breaker.Timeout = time.Minute

	r, err := Bootstrap(&BootstrapConfig{Config: cfg, Log: logs})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	sha, _ := doc.Find("li.commit").Attr("data-sha")
	assert.Equal(t, "abc123", sha)
	assert.Contains(t, doc.Find(".commit-message").Text(), "fix bug")
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
