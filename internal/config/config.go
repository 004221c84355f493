package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServiceName identifies one of the deployable route groups.
const (
	ServiceIdentity     = "identity"
	ServiceCourse       = "course"
	ServiceApplication  = "application"
	ServiceTA           = "ta"
	ServiceNotification = "notification"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
		// Services lists the route groups this deployment mounts. A full
		// deployment runs five processes, each mounting exactly one group.
		Services []string `yaml:"services" env:"SERVER_SERVICES"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	// Peers holds the base URLs of the other deployed services. The
	// lifecycle chain reaches role grants, contracts and notifications
	// through these, never through in-process calls.
	Peers struct {
		AuthBaseURL         string `yaml:"auth_base_url" env:"PEER_AUTH_BASE_URL"`
		CourseBaseURL       string `yaml:"course_base_url" env:"PEER_COURSE_BASE_URL"`
		ApplicationBaseURL  string `yaml:"application_base_url" env:"PEER_APPLICATION_BASE_URL"`
		TaBaseURL           string `yaml:"ta_base_url" env:"PEER_TA_BASE_URL"`
		NotificationBaseURL string `yaml:"notification_base_url" env:"PEER_NOTIFICATION_BASE_URL"`
		// CallTimeout bounds every outbound peer call.
		CallTimeout string `yaml:"call_timeout" env:"PEER_CALL_TIMEOUT"`
	} `yaml:"peers"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults: mount every service group unless told otherwise
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.Services = []string{
		ServiceIdentity,
		ServiceCourse,
		ServiceApplication,
		ServiceTA,
		ServiceNotification,
	}

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "tarecruit"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// JWT defaults. Tokens live ten hours from issuance.
	config.JWT.TokenExpiration = "10h"
	config.JWT.Issuer = "tarecruit.app"

	// Peer defaults point at a single co-hosted deployment
	base := "http://localhost:8080/api/v1"
	config.Peers.AuthBaseURL = base + "/auth"
	config.Peers.CourseBaseURL = base + "/courses"
	config.Peers.ApplicationBaseURL = base + "/applications"
	config.Peers.TaBaseURL = base + "/ta"
	config.Peers.NotificationBaseURL = base + "/notifications"
	config.Peers.CallTimeout = "10s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	// The signing secret must come from config or environment; there is no
	// compiled-in fallback.
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Peers.CallTimeout); err != nil {
		return fmt.Errorf("invalid peer call timeout format: %w", err)
	}

	known := map[string]bool{
		ServiceIdentity:     true,
		ServiceCourse:       true,
		ServiceApplication:  true,
		ServiceTA:           true,
		ServiceNotification: true,
	}
	if len(config.Server.Services) == 0 {
		return fmt.Errorf("at least one service group must be enabled")
	}
	for _, svc := range config.Server.Services {
		if !known[strings.ToLower(strings.TrimSpace(svc))] {
			return fmt.Errorf("unknown service group %q", svc)
		}
	}

	return nil
}

// ServiceEnabled reports whether a route group should be mounted by this
// deployment.
func (c *Config) ServiceEnabled(name string) bool {
	for _, svc := range c.Server.Services {
		if strings.EqualFold(strings.TrimSpace(svc), name) {
			return true
		}
	}
	return false
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsDuration gets an environment variable as a duration or returns a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
