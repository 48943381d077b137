package config

import (
	"fmt"
	"time"

	"github.com/nanodraw/nanodraw/internal/consts"
	"github.com/nanodraw/nanodraw/tools"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(filePath string) {
	config := tools.PanicOnError(tools.ReadFile(filePath))
	initFromYaml(config)
	GConfig.fillDefault()
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	CredentialFile string `yaml:"credential_file"`
	DatabaseFile   string `yaml:"database_file"`
	ImageTTL       string `yaml:"image_ttl"`

	Google `yaml:"google"`
}

type Google struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

func (c *Config) fillDefault() {
	if c.LogFile == "" {
		c.LogFile = "logs/nanodraw.log"
	}
	if c.LogMaxSize == 0 {
		c.LogMaxSize = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAge == 0 {
		c.LogMaxAge = 28
	}
	if c.CredentialFile == "" {
		c.CredentialFile = "nanodraw.credential"
	}
	if c.DatabaseFile == "" {
		c.DatabaseFile = "nanodraw.db"
	}
	if c.ImageTTL == "" {
		c.ImageTTL = "30m"
	}
	if c.Google.BaseURL == "" {
		c.Google.BaseURL = consts.GoogleBaseURL
	}
	if c.Google.Model == "" {
		c.Google.Model = consts.DefaultModel
	}
	if c.Google.Timeout == "" {
		c.Google.Timeout = "2m"
	}
}

func (c *Config) Verify() error {
	if _, err := time.ParseDuration(c.ImageTTL); err != nil {
		return fmt.Errorf("invalid image_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.Google.Timeout); err != nil {
		return fmt.Errorf("invalid google.timeout: %w", err)
	}
	return nil
}

func (c *Config) ImageTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.ImageTTL)
	return d
}

func (c *Config) GoogleTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Google.Timeout)
	return d
}
