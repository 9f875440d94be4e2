package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/veltio/sfauth/internal/models"
)

// Config is the process configuration: the salesforce credential block
// plus logging settings. Credentials come from a config file, the
// environment (SFAUTH_ prefix) or a .env file; they are never compiled in.
type Config struct {
	Salesforce models.BasicConfig `mapstructure:"salesforce"`
	Logging    LoggingConfig      `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	setupViperConfig(v, configFile)
	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/sfauth")

	if home := os.Getenv("HOME"); len(home) > 0 {
		v.AddConfigPath(filepath.Join(home, ".config", "sfauth"))
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix("SFAUTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("salesforce.sandbox", false)
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {

	// Salesforce credential environment variables
	v.BindEnv("salesforce.username", "SFAUTH_SALESFORCE_USERNAME")
	v.BindEnv("salesforce.password", "SFAUTH_SALESFORCE_PASSWORD")
	v.BindEnv("salesforce.token", "SFAUTH_SALESFORCE_TOKEN")
	v.BindEnv("salesforce.sandbox", "SFAUTH_SALESFORCE_SANDBOX")
	v.BindEnv("salesforce.login_url", "SFAUTH_SALESFORCE_LOGIN_URL")

	v.BindEnv("logging.level", "SFAUTH_LOGGING_LEVEL")
	v.BindEnv("logging.format", "SFAUTH_LOGGING_FORMAT")
}

// readAndUnmarshalConfig reads the configuration file and unmarshals it
func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	return nil
}

// Credentials extracts and validates the Salesforce credential block.
// Username, password and security token are all required.
func (c *Config) Credentials() (models.Credentials, error) {

	username, foundUsername := c.Salesforce.GetString("username")
	if !foundUsername {
		return models.Credentials{}, fmt.Errorf("username not found in config")
	}

	password, foundPassword := c.Salesforce.GetString("password")
	if !foundPassword {
		return models.Credentials{}, fmt.Errorf("password not found in config")
	}

	token, foundToken := c.Salesforce.GetString("token")
	if !foundToken {
		return models.Credentials{}, fmt.Errorf("token not found in config")
	}

	sandbox, _ := c.Salesforce.GetBool("sandbox")

	return models.NewCredentials(username, password, token, sandbox), nil
}

// LoginURL returns the configured login endpoint override, or empty when
// the standard production/sandbox hosts should be used.
func (c *Config) LoginURL() string {
	return c.Salesforce.GetStringWithDefault("login_url", "")
}
