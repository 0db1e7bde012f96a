package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"colorpicker/internal/logger"
	"colorpicker/pkg/colortypes"
)

// EnvPrefix is the prefix of every environment variable the tooling reads.
const EnvPrefix = "COLORPICKER"

// Configuration keys.
const (
	ConfigKeyMode         = "mode"
	ConfigKeyLocale       = "locale"
	ConfigKeyShowCheckbox = "show_checkbox"
	ConfigKeyLogLevel     = "log_level"
	ConfigKeyLogFile      = "log_file"
)

// Config is the resolved field configuration.
type Config struct {
	Mode         colortypes.ColorMode
	Locale       string
	ShowCheckbox bool
	LogLevel     string
	LogFile      string
}

// ConfigurationService resolves configuration from flags, environment, .env files and defaults.
// Priority (highest to lowest): flags > environment variables > local .env > defaults.
type ConfigurationService struct {
	initialized bool
	v           *viper.Viper
	workDir     string
	envLoaded   bool
}

// NewConfigurationService creates a ConfigurationService over v. A nil v uses a fresh viper.
func NewConfigurationService(v *viper.Viper) *ConfigurationService {
	if v == nil {
		v = viper.New()
	}
	return &ConfigurationService{
		initialized: false,
		v:           v,
	}
}

// Name returns the service name "configuration" for registration.
func (c *ConfigurationService) Name() string {
	return "configuration"
}

// SetWorkDir overrides the directory searched for a .env file.
func (c *ConfigurationService) SetWorkDir(dir string) {
	c.workDir = dir
}

// Initialize registers defaults, environment binding and the local .env file.
func (c *ConfigurationService) Initialize() error {
	if c.initialized {
		return nil
	}

	c.v.SetDefault(ConfigKeyMode, colortypes.ModeRGB.String())
	c.v.SetDefault(ConfigKeyLocale, DefaultLocale)
	c.v.SetDefault(ConfigKeyShowCheckbox, true)
	c.v.SetDefault(ConfigKeyLogLevel, "info")
	c.v.SetDefault(ConfigKeyLogFile, "")

	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if err := c.loadLocalDotEnv(); err != nil {
		return fmt.Errorf("failed to load local .env: %w", err)
	}

	c.initialized = true
	return nil
}

// EnvFileLoaded reports whether a local .env file contributed values.
func (c *ConfigurationService) EnvFileLoaded() bool {
	return c.envLoaded
}

// Config returns the resolved configuration. An unknown mode is an error.
func (c *ConfigurationService) Config() (Config, error) {
	if !c.initialized {
		return Config{}, fmt.Errorf("configuration service not initialized")
	}

	mode, err := colortypes.ParseColorMode(c.v.GetString(ConfigKeyMode))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Mode:         mode,
		Locale:       c.v.GetString(ConfigKeyLocale),
		ShowCheckbox: c.v.GetBool(ConfigKeyShowCheckbox),
		LogLevel:     c.v.GetString(ConfigKeyLogLevel),
		LogFile:      c.v.GetString(ConfigKeyLogFile),
	}, nil
}

// SetConfigValue overrides a configuration value. This is primarily for testing purposes.
func (c *ConfigurationService) SetConfigValue(key string, value interface{}) error {
	if !c.initialized {
		return fmt.Errorf("configuration service not initialized")
	}
	c.v.Set(key, value)
	return nil
}

// loadLocalDotEnv merges COLORPICKER_* entries of ./.env below the environment layer.
func (c *ConfigurationService) loadLocalDotEnv() error {
	dir := c.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	envPath := filepath.Join(dir, ".env")
	data, err := os.ReadFile(envPath)
	if os.IsNotExist(err) {
		return nil // Missing local .env file is not an error
	}
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", envPath, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", envPath, err)
	}

	settings := make(map[string]interface{})
	for key, value := range envMap {
		if !strings.HasPrefix(key, EnvPrefix+"_") {
			continue
		}
		settings[strings.ToLower(strings.TrimPrefix(key, EnvPrefix+"_"))] = value
	}
	if len(settings) == 0 {
		return nil
	}

	if err := c.v.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("failed to merge .env settings: %w", err)
	}
	c.envLoaded = true
	logger.Debug("Loaded local .env", "path", envPath, "keys", len(settings))
	return nil
}
