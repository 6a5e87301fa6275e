package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config Application Configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// AppConfig Application Configuration
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"` // development, production
}

// LogConfig Log Configuration
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// StorageConfig Backing store of the SRP user repository
type StorageConfig struct {
	Type          string        `mapstructure:"type"` // memory, sqlite
	DSN           string        `mapstructure:"dsn"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
}

// DemoConfig Which examples run and with what inputs
type DemoConfig struct {
	Principles []string        `mapstructure:"principles"` // dip, isp, ocp, srp
	Variants   []string        `mapstructure:"variants"`   // violation, compliant
	Documents  DocumentsConfig `mapstructure:"documents"`
	Payments   []PaymentConfig `mapstructure:"payments"`
	Users      []UserConfig    `mapstructure:"users"`
}

// DocumentsConfig Document names used by the ISP examples
type DocumentsConfig struct {
	Simple          string `mapstructure:"simple"`
	AdvancedPlain   string `mapstructure:"advanced_plain"`
	AdvancedStapled string `mapstructure:"advanced_stapled"`
	Generic         string `mapstructure:"generic"`
}

// PaymentConfig One payment replayed by the OCP examples
type PaymentConfig struct {
	Method string  `mapstructure:"method"`
	Amount float64 `mapstructure:"amount"`
}

// UserConfig User seeded into the SRP store
type UserConfig struct {
	ID    int    `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// IsDevelopment Whether it's development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction Whether it's production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load Load Configuration
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SOLID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// defaults only
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setDefaults Set default configuration
func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "solid-example")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "file")
	v.SetDefault("log.file_path", "logs/solid.log")

	// Storage
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.dsn", "file::memory:?cache=shared")
	v.SetDefault("storage.slow_threshold", "200ms")

	// Demo
	v.SetDefault("demo.principles", []string{"dip", "isp", "ocp", "srp"})
	v.SetDefault("demo.variants", []string{"violation", "compliant"})
	v.SetDefault("demo.documents.simple", "MySimpleReport.docx")
	v.SetDefault("demo.documents.advanced_plain", "MyAdvancedReport_no_staple.docx")
	v.SetDefault("demo.documents.advanced_stapled", "MyAdvancedReport_with_staple.docx")
	v.SetDefault("demo.documents.generic", "Test.doc")
	v.SetDefault("demo.payments", []map[string]any{
		{"method": "credit_card", "amount": 100},
		{"method": "paypal", "amount": 50},
		{"method": "bank_transfer", "amount": 200},
	})
	v.SetDefault("demo.users", []map[string]any{
		{"id": 1, "name": "개발구루", "email": "guru@example.com"},
	})
}
