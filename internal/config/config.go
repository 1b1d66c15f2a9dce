package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/pager/internal/errors"
	"github.com/vango-dev/pager/pkg/paginate"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pager.json"

	// DefaultPort is the default HTTP server port.
	DefaultPort = 8080

	// DefaultHost is the default HTTP server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "10s"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultExportDir is the disk export directory.
	DefaultExportDir = "fragments"

	// DefaultKeyFormat names exported fragments; %d is the one-based page.
	DefaultKeyFormat = "page-%d.html"
)

// Export backends.
const (
	BackendDisk = "disk"
	BackendS3   = "s3"
)

// Config represents the complete pager.json configuration.
type Config struct {
	// Pagination holds the defaults for every rendered control.
	Pagination paginate.Config `json:"pagination"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server"`

	// Export contains fragment export settings.
	Export ExportConfig `json:"export"`

	// Log contains logging settings.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// ShutdownTimeout is a time.Duration string (e.g. "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`

	// MetricsPath is the Prometheus endpoint; "-" disables it.
	MetricsPath string `json:"metricsPath,omitempty"`

	// Tracing enables OpenTelemetry spans using the global provider.
	Tracing bool `json:"tracing,omitempty"`
}

// ExportConfig contains fragment export settings.
type ExportConfig struct {
	// Backend is "disk" or "s3".
	Backend string `json:"backend,omitempty"`

	// Dir is the output directory for the disk backend.
	Dir string `json:"dir,omitempty"`

	// Bucket, Prefix, Region and Endpoint configure the s3 backend.
	// Endpoint is only needed for S3-compatible services.
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style S3 addressing.
	PathStyle bool `json:"pathStyle,omitempty"`

	// KeyFormat is a fmt pattern with one %d verb for the page number.
	KeyFormat string `json:"keyFormat,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Pagination: paginate.DefaultConfig(),
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
			MetricsPath:     DefaultMetricsPath,
		},
		Export: ExportConfig{
			Backend:   BackendDisk,
			Dir:       DefaultExportDir,
			KeyFormat: DefaultKeyFormat,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for pager.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E102").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'pager init' to write a default configuration")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes pager.json content on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}
	cfg.applyDefaults()
	cfg.ApplyEnv()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E103").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E103").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}

	if c.Export.Backend == "" {
		c.Export.Backend = BackendDisk
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
	if c.Export.KeyFormat == "" {
		c.Export.KeyFormat = DefaultKeyFormat
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// ApplyEnv applies PAGER_HOST and PAGER_PORT. Malformed ports are ignored
// here and left for Validate to report on the file value.
func (c *Config) ApplyEnv() {
	if host := os.Getenv("PAGER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("PAGER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	p := c.Pagination
	if p.ItemsPerPage < 1 {
		return invalid("pagination.itemsPerPage", "itemsPerPage must be at least 1")
	}
	if p.DisplayWindowSize < 1 || p.DisplayWindowSize > paginate.MaxDisplayWindowSize {
		return invalid("pagination.displayWindowSize",
			fmt.Sprintf("displayWindowSize must be between 1 and %d", paginate.MaxDisplayWindowSize))
	}
	if p.EdgeEntries < 0 || p.EdgeEntries > paginate.MaxEdgeEntries {
		return invalid("pagination.edgeEntries",
			fmt.Sprintf("edgeEntries must be between 0 and %d", paginate.MaxEdgeEntries))
	}
	if p.CurrentPage < 0 {
		return invalid("pagination.currentPage", "currentPage is zero-based and must not be negative")
	}
	if !strings.Contains(p.LinkTemplate, paginate.IDPlaceholder) && p.LinkTemplate != paginate.DefaultLinkTemplate {
		return invalid("pagination.linkTemplate", "linkTemplate must contain "+paginate.IDPlaceholder).
			WithSuggestion(`Use a template such as "/posts?page=__id__"`)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return invalid("server.port", "Port must be between 0 and 65535")
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return invalid("server.shutdownTimeout", "shutdownTimeout must be a duration such as \"10s\"").Wrap(err)
	}

	switch c.Export.Backend {
	case BackendDisk:
	case BackendS3:
		if c.Export.Bucket == "" {
			return invalid("export.bucket", "The s3 backend needs a bucket")
		}
	default:
		return errors.New("E121").WithField("export.backend")
	}
	if strings.Count(c.Export.KeyFormat, "%d") != 1 {
		return invalid("export.keyFormat", "keyFormat must contain exactly one %d verb")
	}

	if _, err := c.Log.level(); err != nil {
		return invalid("log.level", "level must be debug, info, warn or error").Wrap(err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return invalid("log.format", "format must be text or json")
	}
	return nil
}

func invalid(field, detail string) *errors.PagerError {
	return errors.New("E100").WithField(field).WithDetail(detail)
}

// ShutdownTimeoutDuration returns the parsed shutdown timeout, falling back to the
// default when the value does not parse.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(s.ShutdownTimeout); err == nil {
		return d
	}
	d, _ := time.ParseDuration(DefaultShutdownTimeout)
	return d
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}

// NewLogger builds a slog.Logger writing to w. verbose forces debug level.
func (l LogConfig) NewLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl, err := l.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
