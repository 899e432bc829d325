package config

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"

	"github.com/o365cli/o365/pkg/shared/files"
)

const (
	// DefaultConfigFolder is the folder under the user's home directory holding config.yml.
	DefaultConfigFolder = ".o365"
	// DefaultConfigName is the name of the config file looked up when --config is not set.
	DefaultConfigName = "config.yml"
)

type Config struct {
	Logger Logger `yaml:"logger"`
	SPFx   SPFx   `yaml:"spfx"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// SPFx holds defaults for the spfx command group.
type SPFx struct {
	PackageManager string `yaml:"package_manager"`
	Output         string `yaml:"output"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig resolves the config file location and loads it.
// An explicitly requested file must exist. When the path comes from the
// default location and no file is there, an empty config is returned.
func LoadConfig(configPath string) (*Config, error) {
	explicit := true
	if configPath == "" {
		configPath = os.Getenv("O365_CONFIG")
	}
	if configPath == "" {
		explicit = false
		configPath = DefaultConfigPath()
	}

	expanded, err := files.ExpandPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", configPath, err)
	}

	if !explicit && !files.Exists(expanded) {
		return &Config{}, nil
	}

	cfg, err := NewConfig(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", expanded, err)
	}
	return cfg, nil
}

// DefaultConfigPath returns ~/.o365/config.yml, or config.yml in the working
// directory when the home folder cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigName
	}
	return filepath.Join(home, DefaultConfigFolder, DefaultConfigName)
}
