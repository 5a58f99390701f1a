package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "ISOCHRONE"

// developmentJWTSecret signs admin tokens when no secret is configured in development.
const developmentJWTSecret = "isochrone-development-secret-do-not-deploy"

// Profile catalogue sources.
const (
	ProfileSourceFile     = "file"
	ProfileSourceDatabase = "database"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	User     string `validate:"required"`
	Password string
	DBName   string `validate:"required"`
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// KafkaConfig holds Kafka producer settings.
type KafkaConfig struct {
	Brokers []string `validate:"min=1,dive,required"`
}

// JWTConfig holds the settings used to verify admin tokens.
type JWTConfig struct {
	Secret    string        `validate:"required,min=32"`
	AccessTTL time.Duration `validate:"gt=0"`
}

// ServiceConfig holds all configuration for the isochrone service.
type ServiceConfig struct {
	Port          string `validate:"required"`
	AppEnv        string `validate:"oneof=development staging production test"`
	JWTConfig     JWTConfig
	ProfileSource string `validate:"oneof=file database"`
	ProfilesFile  string `validate:"required_if=ProfileSource file"`
	DBConfig      *DatabaseConfig
	KafkaConfig   KafkaConfig
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DatabaseURL returns the connection URL used by the migration runner.
func (c DatabaseConfig) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// Load reads configuration from ISOCHRONE_* environment variables and an optional config.yml.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_access_ttl", 15*time.Minute)
	v.SetDefault("profile_source", ProfileSourceFile)
	v.SetDefault("profiles_file", "config/profiles.yml")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "isochrone_db")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_brokers", "localhost:9092")
}

func fromViper(v *viper.Viper) (*ServiceConfig, error) {
	cfg := &ServiceConfig{
		Port:   servicePort(v.GetString("service_port")),
		AppEnv: v.GetString("app_env"),
		JWTConfig: JWTConfig{
			Secret:    v.GetString("jwt_secret"),
			AccessTTL: v.GetDuration("jwt_access_ttl"),
		},
		ProfileSource: v.GetString("profile_source"),
		ProfilesFile:  v.GetString("profiles_file"),
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("kafka_brokers")),
		},
	}
	if cfg.JWTConfig.Secret == "" && cfg.AppEnv == "development" {
		cfg.JWTConfig.Secret = developmentJWTSecret
	}
	if cfg.ProfileSource == ProfileSourceDatabase {
		cfg.DBConfig = &DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func servicePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
