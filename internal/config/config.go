package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/surveyloom-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// MaxMissingPerSubject is the scoring threshold: subjects with more
	// unanswered questions than this are left unscored.
	MaxMissingPerSubject int    `mapstructure:"max_missing_per_subject" yaml:"max_missing_per_subject"`
	LogLevel             string `mapstructure:"log_level" yaml:"log_level"`
	Color                bool   `mapstructure:"color" yaml:"color"`
	// PreviewRows limits table previews in terminal output; 0 shows all.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.surveyloom/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".surveyloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	// A local .env may carry SURVEYLOOM_* variables; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SURVEYLOOM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("max_missing_per_subject", 1)
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", true)
	v.SetDefault("preview_rows", 10)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".surveyloom"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
