package config

import (
	"errors"
	"strings"

	// Loads a .env file from the working directory into the process
	// environment, if one exists, before viper reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Media    MediaConfig    `mapstructure:"media"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// Address is the listen address for net/http, e.g. ":3000".
func (s ServerConfig) Address() string {
	if strings.Contains(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// MediaConfig points at the S3-compatible bucket that hosts profile images.
type MediaConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	// PublicBaseURL prefixes object keys to build the URL stored on users.
	// Empty means derive it from Endpoint and BucketName.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// UploadConfig controls how incoming files are staged on local disk.
type UploadConfig struct {
	StagingDir string `mapstructure:"staging_dir"`
	MaxMemory  int64  `mapstructure:"max_memory"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig reads configuration from path/config.yaml (optional) and the
// environment. Nested keys map to env vars with dots replaced by
// underscores: database.uri -> DATABASE_URI.
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Names the original deployment used.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("database.uri", "DATABASE_URI", "MONGODB_URI")

	v.SetDefault("server.port", "3000")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitbuddy")
	v.SetDefault("media.endpoint", "")
	v.SetDefault("media.region", "us-east-1")
	v.SetDefault("media.access_key_id", "")
	v.SetDefault("media.secret_access_key", "")
	v.SetDefault("media.bucket_name", "fitbuddy-media")
	v.SetDefault("media.public_base_url", "")
	v.SetDefault("upload.staging_dir", "uploads")
	v.SetDefault("upload.max_memory", 8<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// A missing config file is fine: defaults and env vars cover everything.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
