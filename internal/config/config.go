package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in each config directory.
const FileName = "sez2ecef.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. SEZ2ECEF_OUTPUT_FORMAT.
const EnvPrefix = "SEZ2ECEF"

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	Endpoint     string        `json:"endpoint" mapstructure:"endpoint"`
	Insecure     bool          `json:"insecure" mapstructure:"insecure"`
}

// VerifyConfig controls the cross-check of the observer origin against the
// wgs84 package.
type VerifyConfig struct {
	Enabled     bool    `json:"enabled" mapstructure:"enabled"`
	ToleranceKm float64 `json:"toleranceKm" mapstructure:"toleranceKm"`
}

// Load sets default values and reads the JSON config file from the first
// directory that has one. A missing file is not an error.
func Load(configDirs ...string) error {
	// Set default values
	viper.SetDefault("logLevel", "warn")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("output.format", "plain")
	viper.SetDefault("validation.strict", false)

	viper.SetDefault("verify.enabled", false)
	viper.SetDefault("verify.toleranceKm", 0.001)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "sez2ecef")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}
	if len(configDirs) == 0 {
		return nil
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// UsedFile returns the config file that was read, or "" if none was.
func UsedFile() string {
	return viper.ConfigFileUsed()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetVerifyConfig returns the origin cross-check settings.
func GetVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Enabled:     viper.GetBool("verify.enabled"),
		ToleranceKm: viper.GetFloat64("verify.toleranceKm"),
	}
}

// GetOTelConfig returns the OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}
