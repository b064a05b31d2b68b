package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// CONFIG — Server configuration loaded from YAML
// ============================================================================
// Precedence: command line flags > config file > defaults.
// ============================================================================

const (
	DfltListenAddress       = "localhost"
	DfltListenPort          = 8090
	DfltReadTimeoutSecs     = 10
	DfltWriteTimeoutSecs    = 30
	DfltShutdownTimeoutSecs = 5
	DfltLogLevel            = "info"
)

// LoggingConf configures the global logger.
type LoggingConf struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Conf is the complete server configuration.
type Conf struct {
	ListenAddress       string      `yaml:"listenAddress"`
	ListenPort          int         `yaml:"listenPort"`
	ReadTimeoutSecs     int         `yaml:"readTimeoutSecs"`
	WriteTimeoutSecs    int         `yaml:"writeTimeoutSecs"`
	ShutdownTimeoutSecs int         `yaml:"shutdownTimeoutSecs"`
	VocabularyPath      string      `yaml:"vocabularyPath"`
	WatchVocabulary     bool        `yaml:"watchVocabulary"`
	Logging             LoggingConf `yaml:"logging"`
}

// CmdOptions holds values given on the command line. Zero values mean
// "not set".
type CmdOptions struct {
	ListenAddress   string
	ListenPort      int
	VocabularyPath  string
	WatchVocabulary bool
	LogPath         string
	LogLevel        string
}

// Addr returns host:port for net/http.
func (c *Conf) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenAddress, c.ListenPort)
}

func (c *Conf) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSecs) * time.Second
}

func (c *Conf) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSecs) * time.Second
}

func (c *Conf) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSecs) * time.Second
}

// Validate checks value ranges. Call it after ApplyDefaults.
func (c *Conf) Validate() error {
	if c.ListenPort < 1 || c.ListenPort > 65535 {
		return fmt.Errorf("invalid listenPort %d", c.ListenPort)
	}
	if c.ReadTimeoutSecs < 0 || c.WriteTimeoutSecs < 0 || c.ShutdownTimeoutSecs < 0 {
		return errors.New("timeouts must not be negative")
	}
	if c.WatchVocabulary && c.VocabularyPath == "" {
		return errors.New("watchVocabulary requires vocabularyPath")
	}
	return nil
}

// ApplyDefaults fills in missing values.
func (c *Conf) ApplyDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DfltListenAddress
	}
	if c.ListenPort == 0 {
		log.Debug().Msgf("listenPort not specified, using default value %d", DfltListenPort)
		c.ListenPort = DfltListenPort
	}
	if c.ReadTimeoutSecs == 0 {
		c.ReadTimeoutSecs = DfltReadTimeoutSecs
	}
	if c.WriteTimeoutSecs == 0 {
		c.WriteTimeoutSecs = DfltWriteTimeoutSecs
	}
	if c.ShutdownTimeoutSecs == 0 {
		c.ShutdownTimeoutSecs = DfltShutdownTimeoutSecs
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DfltLogLevel
	}
}

// OverrideWithFlags applies command line values on top of the file.
func (c *Conf) OverrideWithFlags(opts CmdOptions) {
	if opts.ListenAddress != "" {
		c.ListenAddress = opts.ListenAddress
	}
	if opts.ListenPort != 0 {
		c.ListenPort = opts.ListenPort
	}
	if opts.VocabularyPath != "" {
		c.VocabularyPath = opts.VocabularyPath
	}
	if opts.WatchVocabulary {
		c.WatchVocabulary = true
	}
	if opts.LogPath != "" {
		c.Logging.Path = opts.LogPath
	}
	if opts.LogLevel != "" {
		c.Logging.Level = opts.LogLevel
	}
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*Conf, error) {
	var conf Conf
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &conf, nil
}

// LoadConfig reads the config at path. An empty path yields an empty Conf.
// The result still needs OverrideWithFlags, ApplyDefaults and Validate.
func LoadConfig(path string) (*Conf, error) {
	if path == "" {
		return &Conf{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Resolve runs the full pipeline: load, override, defaults, validate.
func Resolve(path string, opts CmdOptions) (*Conf, error) {
	conf, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	conf.OverrideWithFlags(opts)
	conf.ApplyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
