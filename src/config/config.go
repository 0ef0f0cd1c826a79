package config

import (
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultOutputDir = "."
	DefaultAddress   = "/ip4/127.0.0.1"
	DefaultRole      = "validator"
)

// Config contains the settings shared by every open-libra command.
type Config struct {
	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// AuditLog, when set, is a file to which every Info-and-above entry is
	// copied in JSON.
	AuditLog string `mapstructure:"audit-log"`

	// ConfigDir is where an optional open-libra.toml is looked up.
	ConfigDir string `mapstructure:"config-dir"`

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		ConfigDir: DefaultOutputDir,
	}
}

// SetLogger overrides the logger built by Logger. Tests use it to route logs
// through testing.T.
func (c *Config) SetLogger(logger *logrus.Logger) {
	c.logger = logger
}

// Logger returns a formatted logrus Logger writing to stdout. When AuditLog is
// set, an lfshook hook copies Info-and-above entries to that file.
func (c *Config) Logger() *logrus.Logger {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Out = os.Stdout
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)

		if c.AuditLog != "" {
			c.logger.AddHook(NewAuditHook(c.AuditLog))
		}
	}
	return c.logger
}

// NewAuditHook returns a hook appending Info, Warn, Error, Fatal and Panic
// entries to path as JSON lines.
func NewAuditHook(path string) logrus.Hook {
	return lfshook.NewHook(
		lfshook.PathMap{
			logrus.InfoLevel:  path,
			logrus.WarnLevel:  path,
			logrus.ErrorLevel: path,
			logrus.FatalLevel: path,
			logrus.PanicLevel: path,
		},
		&logrus.JSONFormatter{},
	)
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
