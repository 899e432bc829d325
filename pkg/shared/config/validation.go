package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateSPFxConfig(&cfg.SPFx); err != nil {
		return fmt.Errorf("YAML global config: spfx directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig applies the O365_LOG_LEVEL override and checks the level name.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	updateValue(&loggerConfig.Level, "O365_LOG_LEVEL", "")

	if loggerConfig.Level == "" {
		return nil
	}
	level := strings.ToLower(loggerConfig.Level)
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q, expected one of %s", loggerConfig.Level, strings.Join(validLogLevels, ", "))
}

// ValidateSPFxConfig applies environment overrides and defaults to the spfx section.
// The values themselves are validated by the commands that consume them.
func ValidateSPFxConfig(spfxConfig *SPFx) error {
	if spfxConfig == nil {
		return fmt.Errorf("spfx configuration is nil")
	}
	updateValue(&spfxConfig.PackageManager, "O365_SPFX_PACKAGE_MANAGER", "npm")
	updateValue(&spfxConfig.Output, "O365_SPFX_OUTPUT", "text")

	spfxConfig.PackageManager = strings.ToLower(strings.TrimSpace(spfxConfig.PackageManager))
	spfxConfig.Output = strings.ToLower(strings.TrimSpace(spfxConfig.Output))
	return nil
}

// updateValue sets value from envVar when the variable is set, otherwise falls
// back to defaultValue when value is empty.
func updateValue(value *string, envVar, defaultValue string) {
	if envVarValue := os.Getenv(envVar); envVarValue != "" {
		*value = envVarValue
	} else if *value == "" {
		*value = defaultValue
	}
}
