package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// LogConfig holds one logger per component. They share level, format and
// output; the component field tells their lines apart.
type LogConfig struct {
	MainLogger   *logrus.Logger
	HTTPLogger   *logrus.Logger
	CommitLogger *logrus.Logger

	closer io.Closer
}

// Close releases the log file, if any.
func (c *LogConfig) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// NewLogger builds the main logger from LOG_LEVEL, LOG_FORMAT and LOG_FILE.
func NewLogger(settings LogSettings) (*LogConfig, error) {
	level, err := logrus.ParseLevel(settings.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyLogLevel)
	}

	var formatter logrus.Formatter
	switch strings.ToLower(settings.Format) {
	case "", "json":
		formatter = &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	case "text":
		formatter = &logrus.TextFormatter{TimestampFormat: timestampFormat, FullTimestamp: true}
	default:
		return nil, errors.Newf("invalid %s %q: want json or text", KeyLogFormat, settings.Format)
	}

	var out io.Writer = os.Stdout
	var closer io.Closer
	if settings.File != "" {
		file, err := openLogFile(settings.File)
		if err != nil {
			return nil, err
		}
		// Multi-writer for console and file
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	newLogger := func() *logrus.Logger {
		l := logrus.New()
		l.SetFormatter(formatter)
		l.SetLevel(level)
		l.SetOutput(out)
		return l
	}

	return &LogConfig{
		MainLogger:   newLogger(),
		HTTPLogger:   newLogger(),
		CommitLogger: newLogger(),
		closer:       closer,
	}, nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create log directory %s", dir)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return file, nil
}
