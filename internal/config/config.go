package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bloxi-go/bloxi/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "bloxi.json"

	// YAMLFileName is the name of the YAML configuration file.
	YAMLFileName = "bloxi.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where the preview server exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultLang is the html lang attribute of rendered pages.
	DefaultLang = "en"

	// DefaultTitle is the title of rendered pages.
	DefaultTitle = "bloxi"

	// DefaultPublishDir is the disk publish target.
	DefaultPublishDir = "dist"

	// DefaultPublishPrefix is prepended to published object keys.
	DefaultPublishPrefix = "assets/"
)

// Publish targets.
const (
	TargetDisk = "disk"
	TargetS3   = "s3"
)

// Config represents the complete bloxi.json (or bloxi.yaml) configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Page contains document settings for rendered pages.
	Page PageConfig `json:"page,omitempty" yaml:"page,omitempty"`

	// Publish contains stylesheet publishing configuration.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// Breakpoints overrides the min-widths of named breakpoints.
	Breakpoints map[string]int `json:"breakpoints,omitempty" yaml:"breakpoints,omitempty" validate:"omitempty,dive,keys,oneof=xs sm md lg xl 2xl,endkeys,min=1"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty" validate:"required"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty" validate:"min=1,max=65535"`

	// Base is the path prefix all routes are mounted under.
	Base string `json:"base,omitempty" yaml:"base,omitempty" validate:"omitempty,startswith=/"`

	// MetricsPath is the path of the Prometheus handler. Empty disables it.
	MetricsPath string `json:"metricsPath,omitempty" yaml:"metricsPath,omitempty" validate:"omitempty,startswith=/"`

	// Tracing enables OpenTelemetry spans around page renders.
	Tracing bool `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// PageConfig contains document settings.
type PageConfig struct {
	// Title is the document title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Lang is the html lang attribute.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty" validate:"omitempty,bcp47_language_tag"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// Strict enables duplicate key warnings when mounting.
	Strict *bool `json:"strict,omitempty" yaml:"strict,omitempty"`

	// StyleSheets are extra stylesheet URLs linked from every page.
	StyleSheets []string `json:"styleSheets,omitempty" yaml:"styleSheets,omitempty" validate:"omitempty,dive,required"`
}

// PublishConfig selects where `bloxi css --publish` writes the stylesheet.
type PublishConfig struct {
	// Target is "disk" or "s3".
	Target string `json:"target,omitempty" yaml:"target,omitempty" validate:"oneof=disk s3"`

	// Dir is the output directory for the disk target.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" validate:"required_if=Target disk"`

	// Bucket is the S3 bucket for the s3 target.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty" validate:"required_if=Target s3,bucket"`

	// Prefix is prepended to object keys.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`
}

// New creates a new Config with default values.
func New() *Config {
	strict := true
	return &Config{
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			MetricsPath: DefaultMetricsPath,
		},
		Page: PageConfig{
			Title:  DefaultTitle,
			Lang:   DefaultLang,
			Strict: &strict,
		},
		Publish: PublishConfig{
			Target: TargetDisk,
			Dir:    DefaultPublishDir,
			Prefix: DefaultPublishPrefix,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for bloxi.json first, then bloxi.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, YAMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E101").
		WithDetail("No " + ConfigFileName + " or " + YAMLFileName + " found in " + dir).
		WithSuggestion("Create " + ConfigFileName + " in the project root, or run without a config to use defaults")
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension: .yaml and .yml are YAML, everything else is JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No config file at " + path)
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := New()
	name := filepath.Base(path)
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E102").
			WithLocation(path, 0, 0).
			WithDetail("Failed to parse " + name + ": " + err.Error()).
			WithSuggestion("Check that " + name + " is valid " + formatName(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path in the format
// matching its extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E102").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	// Server
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	// Page
	if c.Page.Title == "" {
		c.Page.Title = DefaultTitle
	}
	if c.Page.Lang == "" {
		c.Page.Lang = DefaultLang
	}
	if c.Page.Strict == nil {
		strict := true
		c.Page.Strict = &strict
	}

	// Publish
	if c.Publish.Target == "" {
		c.Publish.Target = TargetDisk
	}
	if c.Publish.Target == TargetDisk && c.Publish.Dir == "" {
		c.Publish.Dir = DefaultPublishDir
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		e := convertValidationError(err)
		if c.configPath != "" {
			e = e.WithLocation(c.configPath, 0, 0)
		}
		return e
	}
	if e := validateBreakpointOrder(c.Breakpoints); e != nil {
		if c.configPath != "" {
			e = e.WithLocation(c.configPath, 0, 0)
		}
		return e
	}
	return nil
}

// Address returns the host:port the preview server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the preview server URL.
func (c *Config) URL() string {
	return "http://" + c.Address() + c.Server.Base
}

// StrictMode reports whether duplicate key warnings are enabled.
func (c *Config) StrictMode() bool {
	return c.Page.Strict == nil || *c.Page.Strict
}

// PublishDir returns the absolute path of the disk publish target.
func (c *Config) PublishDir() string {
	dir := c.Publish.Dir
	if dir == "" {
		dir = DefaultPublishDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Dir(), dir)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, YAMLFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Create " + ConfigFileName + " in the project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or the nearest parent that has one.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func formatName(path string) string {
	if isYAML(path) {
		return "YAML"
	}
	return "JSON"
}
