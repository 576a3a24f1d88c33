package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const DefaultPort = "3000"

type Config struct {
	// HTTP
	Port       string `yaml:"PORT"`
	RateLimit  int    `yaml:"RATE_LIMIT"`
	APIBaseURL string `yaml:"API_BASE_URL"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBPath     string `yaml:"DB_PATH"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	SeedData   bool   `yaml:"SEED_SAMPLE_DATA"`

	// Image storage
	UploadDir     string `yaml:"UPLOAD_DIR"`
	StorageDriver string `yaml:"STORAGE_DRIVER"`

	// AWS S3 configuration
	AWSS3Bucket    string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region    string `yaml:"AWS_S3_REGION"`
	AWSAccessKey   string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey   string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint  string `yaml:"AWS_S3_ENDPOINT"`
	AWSS3PublicURL string `yaml:"AWS_S3_PUBLIC_URL"`

	// Logging
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`
}

func defaultConfig() Config {
	return Config{
		Port:          DefaultPort,
		RateLimit:     50,
		DBDriver:      "sqlite",
		DBPath:        "./cocktails.db",
		SeedData:      true,
		UploadDir:     "./public/uploads",
		StorageDriver: "local",
		LogLevel:      "info",
	}
}

// LoadConfig reads the YAML file at path (a missing file is not an error),
// then applies environment overrides and fills defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://127.0.0.1:" + cfg.Port
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	stringKeys := map[string]*string{
		"PORT":              &cfg.Port,
		"API_BASE_URL":      &cfg.APIBaseURL,
		"DB_DRIVER":         &cfg.DBDriver,
		"DB_PATH":           &cfg.DBPath,
		"DB_USER":           &cfg.DBUser,
		"DB_NAME":           &cfg.DBName,
		"DB_PASSWORD":       &cfg.DBPassword,
		"DB_PORT":           &cfg.DBPort,
		"DB_HOST":           &cfg.DBHost,
		"UPLOAD_DIR":        &cfg.UploadDir,
		"STORAGE_DRIVER":    &cfg.StorageDriver,
		"AWS_S3_BUCKET":     &cfg.AWSS3Bucket,
		"AWS_S3_REGION":     &cfg.AWSS3Region,
		"AWS_ACCESS_KEY":    &cfg.AWSAccessKey,
		"AWS_SECRET_KEY":    &cfg.AWSSecretKey,
		"AWS_S3_ENDPOINT":   &cfg.AWSS3Endpoint,
		"AWS_S3_PUBLIC_URL": &cfg.AWSS3PublicURL,
		"LOG_LEVEL":         &cfg.LogLevel,
		"LOG_FILE":          &cfg.LogFile,
	}
	for key, dst := range stringKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = n
	}
	if v := os.Getenv("SEED_SAMPLE_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_SAMPLE_DATA: %w", err)
		}
		cfg.SeedData = b
	}
	return nil
}
