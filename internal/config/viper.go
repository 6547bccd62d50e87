package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/service"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/utils"
)

// Keys read from the environment or the optional dotenv file.
const (
	KeyPort           = "PORT"
	KeyGitHubAPIURL   = "GITHUB_API_URL"
	KeyGitHubOwner    = "GITHUB_OWNER"
	KeyGitHubRepo     = "GITHUB_REPO"
	KeyAccessToken    = "ACCESS_TOKEN"
	KeyLogLevel       = "LOG_LEVEL"
	KeyLogFormat      = "LOG_FORMAT"
	KeyLogFile        = "LOG_FILE"
	KeyExposeErrors   = "EXPOSE_ERRORS"
	KeyBreakerEnabled = "BREAKER_ENABLED"
	KeyBreakerMaxReq  = "BREAKER_MAX_REQUESTS"
	KeyBreakerWindow  = "BREAKER_INTERVAL"
	KeyBreakerTimeout = "BREAKER_TIMEOUT"
	KeyHTTPTimeout    = "HTTP_TIMEOUT"
	KeyConfigFile     = "CONFIG_FILE"
)

const defaultConfigFile = ".env"

type LogSettings struct {
	Level  string
	Format string
	File   string
}

// AppConfig is the resolved process configuration.
type AppConfig struct {
	Port         string
	GitHub       service.GitHubConfig
	Log          LogSettings
	ExposeErrors bool
	Breaker      utils.BreakerSettings
	HTTPTimeout  time.Duration
}

// NewViper reads the process environment and, when present, a dotenv file.
// Environment variables win over the file.
func NewViper() (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyExposeErrors, false)
	v.SetDefault(KeyBreakerEnabled, false)
	v.SetDefault(KeyBreakerMaxReq, 3)
	v.SetDefault(KeyBreakerWindow, 10*time.Second)
	v.SetDefault(KeyBreakerTimeout, 30*time.Second)
	v.SetDefault(KeyHTTPTimeout, time.Duration(0))

	path := v.GetString(KeyConfigFile)
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	return v, nil
}

// Load resolves the typed configuration. The GitHub keys may be empty here;
// the upstream client rejects them on first use.
func Load(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Port: v.GetString(KeyPort),
		GitHub: service.GitHubConfig{
			APIURL: v.GetString(KeyGitHubAPIURL),
			Owner:  v.GetString(KeyGitHubOwner),
			Repo:   v.GetString(KeyGitHubRepo),
			Token:  v.GetString(KeyAccessToken),
		},
		Log: LogSettings{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
		ExposeErrors: v.GetBool(KeyExposeErrors),
		Breaker: utils.BreakerSettings{
			Enabled:     v.GetBool(KeyBreakerEnabled),
			MaxRequests: v.GetUint32(KeyBreakerMaxReq),
			Interval:    v.GetDuration(KeyBreakerWindow),
			Timeout:     v.GetDuration(KeyBreakerTimeout),
		},
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
	}

	if cfg.Port == "" {
		return nil, errors.Newf("%s is undefined", KeyPort)
	}
	return cfg, nil
}
