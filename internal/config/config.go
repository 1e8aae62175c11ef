package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/roster"
)

// SchedulingConfig tunes the roster generation engine
type SchedulingConfig struct {
	// PreferredDayPolicy is "hard" (default) or "soft". Hard filters
	// members off non-preferred days; soft only deprioritizes them.
	PreferredDayPolicy string `yaml:"preferredDayPolicy" validate:"omitempty,oneof=hard soft"`

	// Roles the club schedules; empty means all four
	Roles []string `yaml:"roles" validate:"omitempty,dive,oneof=duty_officer assistant_duty_officer instructor tow_pilot"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string           `yaml:"databaseURL" env:"DATABASE_URL" validate:"required"`
	Scheduling  SchedulingConfig `yaml:"scheduling"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for an environment.
// It looks for roster_config.<env>.yaml in the current directory first,
// then in the user's home directory. DATABASE_URL from the process
// environment overrides the file value.
func LoadWithEnv(envName string) (*Config, error) {
	configPath, err := findConfigFile(envName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// PreferredDayPolicy resolves the configured policy, defaulting to hard
func (c *Config) PreferredDayPolicy() roster.PreferredDayPolicy {
	if c.Scheduling.PreferredDayPolicy == string(roster.PreferredDaySoft) {
		return roster.PreferredDaySoft
	}
	return roster.PreferredDayHard
}

// ScheduledRoles resolves the configured role list, defaulting to all four
func (c *Config) ScheduledRoles() []model.Role {
	if len(c.Scheduling.Roles) == 0 {
		return model.AllRoles()
	}
	roles := make([]model.Role, 0, len(c.Scheduling.Roles))
	for _, name := range c.Scheduling.Roles {
		// Already validated by the oneof tag
		roles = append(roles, model.Role(name))
	}
	return roles
}

// findConfigFile searches for roster_config.<env>.yaml in the current
// directory and the home directory
func findConfigFile(envName string) (string, error) {
	configFileName := fmt.Sprintf("roster_config.%s.yaml", envName)

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
