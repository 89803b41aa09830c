package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix prefixes every environment override, e.g. PORTER_VERIFY_TLS
	EnvPrefix = "PORTER"

	defaultDataDir        = "~/.porter"
	defaultCollectionFile = "default.json"
	defaultLogFile        = "porter.log"
	defaultRequestTimeout = 30.0
)

// Config is the configuration for one run of the program.
// It is built once by Load and passed to whatever needs it.
type Config struct {
	DataDir        string              `mapstructure:"data_dir"`
	CollectionFile string              `mapstructure:"collection_file"`
	RequestTimeout float64             `mapstructure:"request_timeout"`
	VerifyTLS      bool                `mapstructure:"verify_tls"`
	LogFile        string              `mapstructure:"log_file"`
	LogLevel       string              `mapstructure:"log_level"`
	Keybinds       map[string][]string `mapstructure:"keybinds"`

	// ConfigFile is the file the values were read from, empty when none
	ConfigFile string `mapstructure:"-"`
}

// Load reads configuration from path (or the default location when path is
// empty) and the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("collection_file", defaultCollectionFile)
	v.SetDefault("request_timeout", defaultRequestTimeout)
	v.SetDefault("verify_tls", true)
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("log_level", "info")

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		expanded, err := expandHome(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
	} else {
		dir, err := expandHome(defaultDataDir)
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	c.ConfigFile = v.ConfigFileUsed()
	if _, err := os.Stat(c.ConfigFile); err != nil {
		c.ConfigFile = ""
	}

	if err := c.resolvePaths(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the configuration used when no file or environment
// overrides exist
func Default() (*Config, error) {
	c := &Config{
		DataDir:        defaultDataDir,
		CollectionFile: defaultCollectionFile,
		RequestTimeout: defaultRequestTimeout,
		VerifyTLS:      true,
		LogFile:        defaultLogFile,
		LogLevel:       "info",
	}
	if err := c.resolvePaths(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be greater than 0, got %v", c.RequestTimeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	return nil
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// EnsureDirs creates the data directory and the parents of the collection
// and log files
func (c *Config) EnsureDirs() error {
	dirs := []string{c.DataDir, filepath.Dir(c.CollectionFile), filepath.Dir(c.LogFile)}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// resolvePaths expands ~ and anchors relative file paths in DataDir
func (c *Config) resolvePaths() error {
	dataDir, err := expandHome(c.DataDir)
	if err != nil {
		return err
	}
	c.DataDir = dataDir

	for _, p := range []*string{&c.CollectionFile, &c.LogFile} {
		expanded, err := expandHome(*p)
		if err != nil {
			return err
		}
		if expanded != "" && !filepath.IsAbs(expanded) {
			expanded = filepath.Join(c.DataDir, expanded)
		}
		*p = expanded
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}
