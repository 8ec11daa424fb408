package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/gosuslugi-grabber/internal/logger"
	"github.com/oshokin/gosuslugi-grabber/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the root of the registry web API.
	BaseURL string `mapstructure:"base_url"`
	// RequestTimeout bounds a single HTTP request, e.g. "5s".
	RequestTimeout string `mapstructure:"request_timeout"`
	// KeepAlive enables connection reuse between requests.
	KeepAlive bool `mapstructure:"keep_alive"`
	// UserAgent overrides the default browser-like User-Agent header.
	UserAgent string `mapstructure:"user_agent"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxLogLength caps the size of logged HTTP dumps, e.g. "64KB".
	MaxLogLength string `mapstructure:"max_log_length"`
	// OrganizationsPerPage is the page size of the organization search.
	OrganizationsPerPage int64 `mapstructure:"organizations_per_page"`
	// HomeManagementsPerPage is the page size of the home management listing.
	HomeManagementsPerPage int64 `mapstructure:"home_managements_per_page"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed dump size limit in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultBaseURL is the base URL of the housing registry.
	DefaultBaseURL = "https://dom.gosuslugi.ru/"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".gosuslugi-grabber.yaml"

	// DefaultRequestTimeout matches the timeout the registry tolerates for xlsx exports.
	DefaultRequestTimeout = "30s"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged HTTP dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultOrganizationsPerPage is the page size the registry web UI uses for its organization chooser.
	DefaultOrganizationsPerPage = 11

	// DefaultHomeManagementsPerPage is the default page size of the home management listing.
	DefaultHomeManagementsPerPage = 50

	// envPrefix is the prefix of environment variables overriding config keys.
	envPrefix = "GOSUSLUGI"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidBaseURL indicates that the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidOrganizationsPerPage indicates that the organization page size is not positive.
	ErrInvalidOrganizationsPerPage = errors.New("organizations_per_page must be a positive integer")
	// ErrInvalidHomeManagementsPerPage indicates that the home management page size is not positive.
	ErrInvalidHomeManagementsPerPage = errors.New("home_managements_per_page must be a positive integer")
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		BaseURL:                DefaultBaseURL,
		RequestTimeout:         DefaultRequestTimeout,
		LogLevel:               DefaultLogLevel,
		MaxLogLength:           humanize.IBytes(DefaultMaxLogLength),
		OrganizationsPerPage:   DefaultOrganizationsPerPage,
		HomeManagementsPerPage: DefaultHomeManagementsPerPage,
	}
}

// LoadConfig loads configuration settings from a YAML file and GOSUSLUGI_* environment variables.
// An empty filename means the default file, which is optional: defaults are used when it is absent.
// An explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	isFileRequired := configFilename != ""
	if !isFileRequired {
		configFilename = DefaultConfigFilename
	}

	isFileExist, err := utils.FileExists(configFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	if isFileExist || isFileRequired {
		v.SetConfigFile(configFilename)

		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	baseURL, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || baseURL.Host == "" || (baseURL.Scheme != "http" && baseURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.BaseURL = baseURL.String()

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	// Zero or empty keeps the transport default.
	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.OrganizationsPerPage <= 0 {
		return ErrInvalidOrganizationsPerPage
	}

	if cfg.HomeManagementsPerPage <= 0 {
		return ErrInvalidHomeManagementsPerPage
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("keep_alive", defaults.KeepAlive)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("max_log_length", defaults.MaxLogLength)
	v.SetDefault("organizations_per_page", defaults.OrganizationsPerPage)
	v.SetDefault("home_managements_per_page", defaults.HomeManagementsPerPage)
}
