package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeySourceBaseURL   = "source.base_url"
	KeySourceTimeout   = "source.timeout_seconds"
	KeyPublishTemplate = "publish.template"
	KeyDatabasePath    = "database.path"
)

const defaultBaseURL = "https://www.usda.gov/oce/commodity/wasde"

type Config struct {
	Source   SourceConfig   `mapstructure:"source" validate:"required"`
	Publish  PublishConfig  `mapstructure:"publish"`
	Database DatabaseConfig `mapstructure:"database"`
}

type SourceConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

type PublishConfig struct {
	Template string `mapstructure:"template" validate:"required"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# wasdex configuration
source:
  base_url: "https://www.usda.gov/oce/commodity/wasde"
  timeout_seconds: 60

publish:
  template: "./index.html"

database:
  path: "./wasdex.db"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceBaseURL, defaultBaseURL)
	v.SetDefault(KeySourceTimeout, 60)
	v.SetDefault(KeyPublishTemplate, "./index.html")
	v.SetDefault(KeyDatabasePath, "./wasdex.db")
}
